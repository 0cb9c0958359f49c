package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// accessLog appends each request of a game as a JSON line to
// <dir>/access-snake-<name>-<game>.log. A zero dir discards everything.
type accessLog struct {
	dir string
	mu  sync.Mutex
}

func (a *accessLog) path(req *MoveRequest) string {
	return filepath.Join(a.dir, fmt.Sprintf("access-snake-%s-%s.log",
		safeName(req.You.Name),
		safeName(req.Game.ID)))
}

func (a *accessLog) Write(req *MoveRequest) error {
	if a == nil || a.dir == "" {
		return nil
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	f, err := os.OpenFile(a.path(req), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(body, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func safeName(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
