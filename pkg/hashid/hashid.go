// Package hashid turns recipe ids into short public codes.
package hashid

import (
	"errors"
	"fmt"

	"Foodgram/config"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalidCode = errors.New("invalid short code")

type Codec struct {
	h *hashids.HashID
}

func New(conf *config.Config) (*Codec, error) {
	data := hashids.NewData()
	data.Salt = conf.ShortLink.Salt
	data.MinLength = conf.ShortLink.MinLength
	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("hashids: %w", err)
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(id uint64) (string, error) {
	return c.h.EncodeInt64([]int64{int64(id)})
}

func (c *Codec) Decode(code string) (uint64, error) {
	nums, err := c.h.DecodeInt64WithError(code)
	if err != nil || len(nums) != 1 || nums[0] <= 0 {
		return 0, ErrInvalidCode
	}
	return uint64(nums[0]), nil
}
