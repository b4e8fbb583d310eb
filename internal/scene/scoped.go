package scene

import (
	"errors"
	"fmt"
)

// WithScratch creates a scratch node, runs fn with it and destroys it again,
// also when fn fails or panics. A release failure is joined to fn's error.
func WithScratch(s Scene, fn func(ScratchNode) error) (err error) {
	node, err := s.CreateScratch()
	if err != nil {
		err = fmt.Errorf("%w: create: %w", ErrScratch, err)
		// A host may hand back a half-built node alongside the error.
		if node != nil {
			if derr := s.DestroyScratch(node); derr != nil {
				err = errors.Join(err, fmt.Errorf("%w: destroy %s: %w", ErrScratch, node.Name(), derr))
			}
		}
		return err
	}
	defer func() {
		if derr := s.DestroyScratch(node); derr != nil {
			err = errors.Join(err, fmt.Errorf("%w: destroy %s: %w", ErrScratch, node.Name(), derr))
		}
	}()
	return fn(node)
}

// PreserveSelection snapshots the selection, runs fn and restores the
// snapshot on every exit path.
func PreserveSelection(s Scene, fn func() error) (err error) {
	saved := s.Selection().clone()
	defer func() {
		if rerr := s.SetSelection(saved); rerr != nil {
			err = errors.Join(err, fmt.Errorf("scene: restore selection: %w", rerr))
		}
	}()
	return fn()
}

// PreserveFrame remembers the frame cursor, runs fn and moves the cursor
// back on every exit path.
func PreserveFrame(s Scene, fn func() error) (err error) {
	saved := s.Frame()
	defer func() {
		if rerr := s.SetFrame(saved); rerr != nil {
			err = errors.Join(err, fmt.Errorf("scene: restore frame %d: %w", saved, rerr))
		}
	}()
	return fn()
}
