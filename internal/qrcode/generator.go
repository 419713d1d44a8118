package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// Generate writes a 256px PNG QR encoding data to dir/<filename>.png and
// returns the written path. Registration QRs encode the member identifier
// and nothing else.
func Generate(data, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.png", filename))
	if err := qrcode.WriteFile(data, qrcode.Medium, 256, path); err != nil {
		return "", err
	}
	return path, nil
}
