package picker

import (
	"errors"
	"fmt"
	"log/slog"

	"datepick/internal/selection"
	"datepick/internal/storage"
)

// ValueKey is the storage key holding the encoded selection.
const ValueKey = "selection"

// Restore loads the stored value into p. A missing key is not an error. A
// stored value for another mode, or one Validate rejects, is skipped with a
// warning so a config change never blocks startup.
func Restore(p *Picker, kv storage.KV) error {
	raw, err := kv.Get(ValueKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load value: %w", err)
	}
	v, err := selection.Decode(raw, p.Mode())
	if err != nil {
		return fmt.Errorf("load value: %w", err)
	}
	if v.Mode != p.Mode() {
		slog.Warn("stored value has another mode", "stored", v.Mode, "mode", p.Mode())
		return nil
	}
	if err := v.Validate(p.Constraints()); err != nil {
		slog.Warn("stored value rejected", "value", raw, "err", err)
		return nil
	}
	p.WriteValue(v)
	return nil
}

// Persister writes every value the picker emits. The last write error is kept
// for the host to report.
type Persister struct {
	kv  storage.KV
	err error
}

func NewPersister(kv storage.KV) *Persister {
	return &Persister{kv: kv}
}

// Save matches the OnChange listener signature.
func (ps *Persister) Save(v selection.Selection) {
	if v.IsEmpty() {
		ps.err = ps.kv.Delete(ValueKey)
	} else {
		ps.err = ps.kv.Set(ValueKey, v.Encode())
	}
	if ps.err != nil {
		slog.Error("persist value failed", "err", ps.err)
		return
	}
	slog.Info("value saved", "value", v.Encode())
}

// Err returns and resets the last write error.
func (ps *Persister) Err() error {
	err := ps.err
	ps.err = nil
	return err
}
