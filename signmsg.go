// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dms

import (
	"encoding/json"
	"fmt"
	"io"
)

// SignMessage is a message deployed to a sign, referencing a sign
// configuration by name. The wire format matches the IRIS sign_message
// JSON documents.
type SignMessage struct {
	Name          string  `json:"name"`
	SignConfig    string  `json:"sign_config"`
	Incident      *string `json:"incident"`
	Multi         string  `json:"multi"`
	BeaconEnabled bool    `json:"beacon_enabled"`
	PrefixPage    bool    `json:"prefix_page"`
	MsgPriority   int     `json:"msg_priority"`
	Sources       string  `json:"sources"`
	Owner         *string `json:"owner"`
	Duration      *int    `json:"duration"`
}

// LoadSignMessages reads a JSON array of sign messages.
func LoadSignMessages(r io.Reader) ([]SignMessage, error) {
	var msgs []SignMessage
	if err := json.NewDecoder(r).Decode(&msgs); err != nil {
		return nil, fmt.Errorf("unable to decode sign messages: %w", err)
	}
	return msgs, nil
}

// Render encodes the message as an animated GIF, looking up its sign
// configuration by name.
func (m *SignMessage) Render(w io.Writer, configs map[string]*SignConfig,
	fonts *FontCache, graphics *GraphicCache, d Defaults) error {
	cfg, ok := configs[m.SignConfig]
	if !ok {
		return fmt.Errorf("unknown sign config: %s", m.SignConfig)
	}
	return RenderSignMessage(w, cfg, m.Multi, fonts, graphics, d)
}
