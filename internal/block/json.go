package block

import "encoding/json"

type blockJSON struct {
	Variant Variant `json:"variant"`
	Cells   []Point `json:"cells"`
}

// MarshalJSON encodes the block as its variant and cell list.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockJSON{Variant: b.variant, Cells: b.Coordinates()})
}

// UnmarshalJSON decodes a block and validates its cells.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	nb, err := New(raw.Variant, raw.Cells)
	if err != nil {
		return err
	}
	*b = nb
	return nil
}
