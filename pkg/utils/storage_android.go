//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 上的设置目录存在并可写
// gdata 使用 /data/data/{package}/ 作为根目录，但不会预先创建子目录，
// 因此在打开存储前调用。
func EnsureStorageDir(appName string) error {
	pkg, err := detectAndroidApp()
	if err != nil {
		return fmt.Errorf("failed to detect Android app: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("test"), 0o644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	os.Remove(probe)
	return nil
}

// detectAndroidApp 从 /proc/self/cmdline 读取应用包名
func detectAndroidApp() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	name := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		name = append(name, ch)
	}
	if len(name) == 0 {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}
	return string(name), nil
}
