package xtestdata_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/omeyang/qakit/pkg/util/xtestdata"
)

func ExampleRandomEmail() {
	email := xtestdata.RandomEmail()
	fmt.Println(strings.HasPrefix(email, "user-"))
	fmt.Println(strings.HasSuffix(email, "@example.com"))
	// Output:
	// true
	// true
}

func ExampleSleep() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := xtestdata.Sleep(ctx, time.Minute)
	fmt.Println(err)
	// Output:
	// context canceled
}
