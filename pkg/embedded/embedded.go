// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	initialized bool
)

// ErrNotInitialized 在 Init() 之前访问嵌入资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = assets != nil
}

// Reset 清除初始化状态（仅供测试使用）
func Reset() {
	assetsFS = nil
	initialized = false
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径：统一为正斜杠并移除 "./" 前缀
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "assets/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", path)
	}
	return path, nil
}

// Open 打开嵌入文件
// 路径必须以 "assets/" 开头
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	clean, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return assetsFS.Open(clean)
}

// ReadFile 读取嵌入文件内容
// 路径必须以 "assets/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	clean, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(assetsFS, clean)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// ReadAsset 读取资源文件
//
// 磁盘上的同名文件优先（便于热重载和替换素材），
// 不存在时再回退到嵌入资源。
func ReadAsset(path string) ([]byte, error) {
	data, diskErr := os.ReadFile(path)
	if diskErr == nil {
		return data, nil
	}

	data, err := ReadFile(path)
	if err == nil {
		return data, nil
	}
	return nil, fmt.Errorf("read %s: %w", path, errors.Join(diskErr, err))
}
