package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/fireworks/pkg/app"
	"github.com/decker502/fireworks/pkg/config"
	"github.com/decker502/fireworks/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	os.Exit(run())
}

// run 返回进程退出码：正常退出为 0，初始化或帧故障为 1
func run() int {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", config.DefaultConfigPath, "烟花配置文件路径")
	watch := flag.Bool("watch", false, "配置文件变化时热重载")
	flag.Parse()

	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Watch:      *watch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		return 1
	}
	defer func() {
		if err := gameApp.Close(); err != nil {
			log.Printf("[Main] Teardown: %v", err)
		}
	}()

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "运行错误: %v\n", err)
		return 1
	}
	return 0
}
