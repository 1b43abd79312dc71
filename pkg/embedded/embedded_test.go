package embedded

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestOpenNotInitialized 测试未初始化时调用 Open
func TestOpenNotInitialized(t *testing.T) {
	Reset()

	_, err := Open("assets/test.png")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Reset()

	_, err := ReadFile("assets/test.txt")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFile 测试路径标准化与前缀检查
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"assets/config/fireworks.yaml": {Data: []byte("seed: 1\n")},
	})
	defer Reset()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "assets/config/fireworks.yaml", false},
		{"带 ./ 前缀", "./assets/config/fireworks.yaml", false},
		{"未知前缀", "data/fireworks.yaml", true},
		{"文件不存在", "assets/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}

	if !Exists("assets/config/fireworks.yaml") {
		t.Error("Exists() should report embedded file")
	}
	if Exists("assets/nope") {
		t.Error("Exists() should not report missing file")
	}
}

// TestReadAssetPrefersDisk 测试磁盘文件优先于嵌入文件
func TestReadAssetPrefersDisk(t *testing.T) {
	Init(fstest.MapFS{
		"assets/a.txt": {Data: []byte("embedded")},
	})
	defer Reset()

	// 嵌入回退
	data, err := ReadAsset("assets/a.txt")
	if err != nil {
		t.Fatalf("ReadAsset() error: %v", err)
	}
	if string(data) != "embedded" {
		t.Errorf("ReadAsset() = %q, want embedded", data)
	}

	// 磁盘优先
	dir := t.TempDir()
	diskPath := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(diskPath, []byte("disk"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err = ReadAsset(diskPath)
	if err != nil {
		t.Fatalf("ReadAsset() error: %v", err)
	}
	if string(data) != "disk" {
		t.Errorf("ReadAsset() = %q, want disk", data)
	}

	if _, err := ReadAsset(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("ReadAsset() expected error for missing file")
	}
}
