package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexInt accepts a JSON number or a numeric string ("2" as well as 2),
// since clients are known to send quantities as strings. Anything that is
// not a whole number fails decoding.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	raw := string(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("not an integer: %s", raw)
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("not an integer: %s", raw)
	}
	*n = flexInt(v)
	return nil
}

type checkoutLine struct {
	ProductID flexInt `json:"product_id"`
	Quantity  flexInt `json:"quantity"`
}

type checkoutRequest struct {
	Items []checkoutLine `json:"items"`
}
