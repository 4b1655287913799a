package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSession returns each error in order, then errEnd.
type scriptedSession struct {
	errs  []error
	calls int
}

func (s *scriptedSession) Session(ctx context.Context) error {
	s.calls++
	if len(s.errs) == 0 {
		return errEnd
	}
	err := s.errs[0]
	s.errs = s.errs[1:]
	return err
}

func TestInteractiveQuizCLI_Run(t *testing.T) {
	tests := []struct {
		name     string
		session  *scriptedSession
		wantErr  string
		minCalls int
	}{
		{
			name:     "ends cleanly on session end",
			session:  &scriptedSession{},
			minCalls: 1,
		},
		{
			name:     "loops until the session ends",
			session:  &scriptedSession{errs: []error{nil, nil}},
			minCalls: 3,
		},
		{
			name:     "session error propagates",
			session:  &scriptedSession{errs: []error{errors.New("read failed")}},
			wantErr:  "read failed",
			minCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := newInteractiveQuizCLI(nil)

			err := cli.Run(context.Background(), tt.session)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.GreaterOrEqual(t, tt.session.calls, tt.minCalls)
		})
	}
}

func TestInteractiveQuizCLI_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cli := newInteractiveQuizCLI(nil)
	session := &scriptedSession{errs: []error{nil, nil, nil}}

	assert.NoError(t, cli.Run(ctx, session))
}
