package model

import "encoding/json"

// GoodsList is the canonical shape of a goods listing response. The store
// API answers either with a bare array or with a {"goods": [...]} wrapper;
// anything else decodes to an empty list.
type GoodsList []Good

// UnmarshalJSON normalizes both listing shapes into a flat slice.
func (l *GoodsList) UnmarshalJSON(data []byte) error {
	var bare []Good
	if err := json.Unmarshal(data, &bare); err == nil {
		*l = bare
		return nil
	}
	var wrapped struct {
		Goods []Good `json:"goods"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		*l = wrapped.Goods
		return nil
	}
	*l = nil
	return nil
}
