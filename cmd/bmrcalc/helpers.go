package bmrcalc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avoronin/bmrcalc/internal/app"
	"github.com/avoronin/bmrcalc/internal/store"
)

func withStore(run func(*store.Store) error) error {
	path, err := app.ResolveDBPath(dbPath)
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	s := store.New(path)
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Close()
	return run(s)
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}
