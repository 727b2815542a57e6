package filestation

import (
	"context"
	"time"

	"github.com/KarpelesLab/pjson"
)

// Time is a timestamp sent by the NAS as unix seconds.
type Time struct {
	time.Time
}

func (u *Time) UnmarshalJSON(data []byte) error {
	return u.UnmarshalContextJSON(context.Background(), data)
}

func (u Time) MarshalJSON() ([]byte, error) {
	return u.MarshalContextJSON(context.Background())
}

func (u *Time) UnmarshalContextJSON(ctx context.Context, data []byte) error {
	// Ignore null, like in the main JSON package.
	if string(data) == "null" {
		return nil
	}
	var sec int64
	if err := pjson.UnmarshalContext(ctx, data, &sec); err != nil {
		return err
	}
	u.Time = time.Unix(sec, 0)
	return nil
}

func (u Time) MarshalContextJSON(ctx context.Context) ([]byte, error) {
	if u.IsZero() {
		return []byte("0"), nil
	}
	return pjson.MarshalContext(ctx, u.Unix())
}
