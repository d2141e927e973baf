package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/hrkit/resume-pipeline/internal/common"
)

// extractTXT reads a plain-text file, detecting the byte encoding
// heuristically. When detection fails or no decoder is available the bytes
// are interpreted as UTF-8 with invalid sequences substituted.
func extractTXT(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read txt: %v", common.ErrDecode, err)
	}

	enc := detectEncoding(raw)
	if enc == nil {
		return strings.ToValidUTF8(string(raw), "�"), nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		// Indeterminate encoding: fall back rather than fail the file.
		return strings.ToValidUTF8(string(raw), "�"), nil
	}
	return string(decoded), nil
}

func detectEncoding(raw []byte) encoding.Encoding {
	if len(raw) == 0 {
		return nil
	}
	res, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || res == nil {
		return nil
	}
	enc, _ := charset.Lookup(res.Charset)
	return enc
}
