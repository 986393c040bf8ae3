// Package session coordinates one editing session: the active component,
// its property store, the generated markup and the copy acknowledgment.
package session

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/canvasgen/internal/canvas"
	"github.com/alexisbeaulieu97/canvasgen/internal/logger"
	"github.com/alexisbeaulieu97/canvasgen/internal/props"
	"github.com/alexisbeaulieu97/canvasgen/internal/store"
	apperrors "github.com/alexisbeaulieu97/canvasgen/pkg/errors"
)

// DefaultAckDuration is how long "copied" stays visible after a copy.
const DefaultAckDuration = 2 * time.Second

// Clipboard receives the generated markup.
type Clipboard interface {
	WriteAll(text string) error
}

// Options configures a Session.
type Options struct {
	Start       canvas.Kind
	AckDuration time.Duration
	Sanitize    bool
	Now         func() time.Time
	Logger      *logger.Logger
}

// Session is driven from a single event loop and is not safe for
// concurrent use.
type Session struct {
	store     *store.Store
	clipboard Clipboard
	now       func() time.Time
	ack       time.Duration
	render    canvas.Options
	log       *logger.Logger

	active      canvas.Kind
	html        string
	copiedUntil time.Time
}

// New creates a session over st with opts.Start active.
func New(st *store.Store, cb Clipboard, opts Options) (*Session, error) {
	if !opts.Start.Valid() {
		return nil, fmt.Errorf("start component: undefined kind %s", opts.Start)
	}
	if opts.AckDuration <= 0 {
		opts.AckDuration = DefaultAckDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Session{
		store:     st,
		clipboard: cb,
		now:       opts.Now,
		ack:       opts.AckDuration,
		render:    canvas.Options{Sanitize: opts.Sanitize},
		log:       opts.Logger,
		active:    opts.Start,
	}
	s.regenerate()
	return s, nil
}

// Active returns the kind being edited.
func (s *Session) Active() canvas.Kind {
	return s.active
}

// HTML returns the markup of the active kind.
func (s *Session) HTML() string {
	return s.html
}

// Bag returns a copy of the active kind's properties.
func (s *Session) Bag() props.Bag {
	return s.store.Bag(s.active)
}

// AckDuration returns how long the copy acknowledgment lasts.
func (s *Session) AckDuration() time.Duration {
	return s.ack
}

// SelectType makes k active and regenerates from its stored bag. Edits
// made to other kinds are kept.
func (s *Session) SelectType(k canvas.Kind) error {
	if !k.Valid() {
		return apperrors.NewPropertyError(k.String(), "", "undefined component", nil)
	}
	s.active = k
	s.regenerate()
	s.log.WithFields(map[string]any{"component": k.String()}).Debug("component selected")
	return nil
}

// SetProperty replaces one key of k's bag. The markup is regenerated only
// when k is active.
func (s *Session) SetProperty(k canvas.Kind, key string, value any) error {
	if err := s.store.Set(k, key, value); err != nil {
		return err
	}
	if k == s.active {
		s.regenerate()
	}
	return nil
}

// AddListItem appends the kind's template item to listKey.
func (s *Session) AddListItem(k canvas.Kind, listKey string) error {
	if err := s.requireActive(k, listKey); err != nil {
		return err
	}
	if _, err := s.store.AppendItem(k, listKey); err != nil {
		return err
	}
	s.regenerate()
	return nil
}

// RemoveListItem drops the item at index from listKey.
func (s *Session) RemoveListItem(k canvas.Kind, listKey string, index int) error {
	if err := s.requireActive(k, listKey); err != nil {
		return err
	}
	if err := s.store.RemoveItem(k, listKey, index); err != nil {
		return err
	}
	s.regenerate()
	return nil
}

// UpdateListItem sets one field of the item at index in listKey.
func (s *Session) UpdateListItem(k canvas.Kind, listKey string, index int, field, value string) error {
	if err := s.requireActive(k, listKey); err != nil {
		return err
	}
	if err := s.store.UpdateItem(k, listKey, index, field, value); err != nil {
		return err
	}
	s.regenerate()
	return nil
}

// CopyGeneratedHTML writes the current markup to the clipboard and reports
// whether it succeeded. Failures are logged at debug level only; the
// acknowledgment is simply not shown.
func (s *Session) CopyGeneratedHTML() bool {
	if s.clipboard == nil {
		s.log.Debug("copy skipped: no clipboard")
		return false
	}
	if err := s.clipboard.WriteAll(s.html); err != nil {
		s.log.DebugErr(err, "copy to clipboard failed")
		return false
	}
	s.copiedUntil = s.now().Add(s.ack)
	return true
}

// Copied reports whether the copy acknowledgment is still showing.
func (s *Session) Copied() bool {
	return s.now().Before(s.copiedUntil)
}

func (s *Session) requireActive(k canvas.Kind, listKey string) error {
	if k != s.active {
		return apperrors.NewPropertyError(k.String(), listKey, "list edits apply to the active component only", apperrors.ErrInactiveKind)
	}
	return nil
}

func (s *Session) regenerate() {
	s.html = canvas.RenderWith(s.active, s.store.Bag(s.active), s.render)
}
