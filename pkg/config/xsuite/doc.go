// Package xsuite 加载和管理测试套件配置。
//
// 配置来源为 YAML 或 JSON 文件（根据扩展名自动检测），底层使用
// [koanf] 解析。文件缺失时回退到内置默认值，便于零配置运行示例
// 套件（目标站点为 saucedemo）：
//
//	base_url: https://www.saucedemo.com
//	browser: chrome
//	headless: false
//	timeout: 10s
//	retry:
//	  max_retries: 3
//	  initial_delay: 1s
//	  multiplier: 2.0
//	  max_delay: 8s
//
// 环境变量 QAKIT_BROWSER 可覆盖 browser 字段，便于 CI 矩阵按浏览器
// 并行跑同一套配置。
//
// 所有加载与校验失败都返回 *xweberr.ConfigError——配置错误不可重试，
// 在重试执行器内出现时会立即终止而不是浪费重试额度。
//
// RetryOptions 方法把配置桥接为 xretry 的执行器选项：
//
//	cfg, err := xsuite.Load("testdata/suite.yaml")
//	exec := xretry.NewExecutor(cfg.RetryOptions()...)
//
// [koanf]: https://github.com/knadh/koanf
package xsuite
