// Package xweberr 定义 UI 自动化框架的错误分类体系。
//
// 浏览器驱动抛出的底层失败被映射为四种框架错误，调用方据此决定
// 一个失败是否值得重试：
//   - ElementNotFoundError：元素未找到（可重试——页面可能尚未渲染完成）
//   - WaitTimeoutError：等待条件超时（可重试）
//   - NavigationError：页面跳转失败（可重试）
//   - ConfigError：配置错误（不可重试——重试无法修复错误的配置）
//
// 每种错误都实现了 xretry.RetryableError 接口，因此在操作闭包内
// 直接返回它们即可完成分类，无需在执行器层做任何特殊处理：
//
//	err := exec.Execute(ctx, "open login page", func(ctx context.Context) error {
//	    if err := driver.Navigate(ctx, url); err != nil {
//	        return xweberr.NewNavigation(url, err)
//	    }
//	    return nil
//	})
//
// 本包只定义错误种类，不驱动浏览器；驱动生命周期和定位策略
// 是上层的职责。
package xweberr
