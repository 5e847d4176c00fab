package capture

import "encoding/base64"

func base64Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}
