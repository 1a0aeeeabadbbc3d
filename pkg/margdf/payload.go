package margdf

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrEmptyPayload = errors.New("payload contains no pings")

// ParsePingPayload decodes an ingestion payload that is either a single ping
// object or an array of them, mirroring what the vendor webhooks send
func ParsePingPayload(payload []byte) ([]RawPing, error) {
	trimmed := bytes.TrimSpace(payload)

	if len(trimmed) == 0 {
		return nil, ErrEmptyPayload
	}

	if trimmed[0] == '[' {
		var pings []RawPing
		if err := json.Unmarshal(trimmed, &pings); err != nil {
			return nil, err
		}

		if len(pings) == 0 {
			return nil, ErrEmptyPayload
		}

		return pings, nil
	}

	var ping RawPing
	if err := json.Unmarshal(trimmed, &ping); err != nil {
		return nil, err
	}

	return []RawPing{ping}, nil
}
