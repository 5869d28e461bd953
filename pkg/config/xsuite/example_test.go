package xsuite_test

import (
	"fmt"

	"github.com/omeyang/qakit/pkg/config/xsuite"
)

func ExampleDefault() {
	cfg := xsuite.Default()
	fmt.Println("base url:", cfg.BaseURL)
	fmt.Println("max retries:", cfg.Retry.MaxRetries)
	// Output:
	// base url: https://www.saucedemo.com
	// max retries: 3
}

func ExampleLoadBytes() {
	cfg, err := xsuite.LoadBytes([]byte(`{"browser": "firefox"}`), xsuite.FormatJSON)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("browser:", cfg.Browser)
	fmt.Println("timeout:", cfg.Timeout)
	// Output:
	// browser: firefox
	// timeout: 10s
}
