package portal

import "github.com/goccy/go-json"

func jsonUnmarshal(body string, dst interface{}) error {
	return json.Unmarshal([]byte(body), dst)
}
