package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	qrc "github.com/skip2/go-qrcode"
)

// Generate 渲染用户二维码图片并落盘，返回文件路径。
// 调用方对失败只记日志，不影响注册流程。
func Generate(dir string, token string, userID uint) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("user_%d_%s.png", userID, token)
	path := filepath.Join(dir, filename)

	if err := qrc.WriteFile(token, qrc.Medium, 256, path); err != nil {
		return "", err
	}
	return path, nil
}
