package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

// recordingTx embeds pgx.Tx for the query surface and records the
// commit/rollback calls the helper makes.
type recordingTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (t *recordingTx) Commit(ctx context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *recordingTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx       *recordingTx
	beginErr error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestWithTransactionCommitsOnSuccess(t *testing.T) {
	tx := &recordingTx{}
	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, tx pgx.Tx) error {
		return nil
	})
	if err != nil {
		t.Fatalf("WithTransaction failed: %v", err)
	}
	if tx.commits != 1 || tx.rollbacks != 0 {
		t.Fatalf("expected one commit and no rollback, got %d/%d", tx.commits, tx.rollbacks)
	}
}

func TestWithTransactionRollsBackAndKeepsSentinel(t *testing.T) {
	sentinel := errors.New("no seats left")
	tx := &recordingTx{}

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, tx pgx.Tx) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected the sentinel to survive the rollback path, got %v", err)
	}
	if tx.commits != 0 || tx.rollbacks != 1 {
		t.Fatalf("expected one rollback and no commit, got %d/%d", tx.rollbacks, tx.commits)
	}
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	tx := &recordingTx{}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected the panic to propagate")
		}
		if tx.rollbacks != 1 {
			t.Fatalf("expected rollback on panic, got %d", tx.rollbacks)
		}
	}()

	_ = WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, tx pgx.Tx) error {
		panic("boom")
	})
}

func TestWithTransactionBeginFailure(t *testing.T) {
	beginErr := errors.New("pool exhausted")

	err := WithTransaction(context.Background(), &fakeBeginner{beginErr: beginErr}, func(ctx context.Context, tx pgx.Tx) error {
		t.Fatal("fn must not run when Begin fails")
		return nil
	})
	if !errors.Is(err, beginErr) {
		t.Fatalf("expected the begin error, got %v", err)
	}
}

func TestWithTransactionCommitFailure(t *testing.T) {
	tx := &recordingTx{commitErr: errors.New("connection reset")}

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(ctx context.Context, tx pgx.Tx) error {
		return nil
	})
	if err == nil {
		t.Fatal("expected an error when commit fails")
	}
}
