// Package session wires the pipeline together: lexer -> preprocessor ->
// AST builder -> semantics.Compiler -> reasoning.Engine. It is the one
// place that owns a full reasoning session's state; the REPL (cmd/lojban)
// is a thin frontend over it.
package session

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/lojban/nesy/internal/ast"
	"github.com/lojban/nesy/internal/dictionary"
	"github.com/lojban/nesy/internal/logic"
	"github.com/lojban/nesy/internal/reasoning"
	"github.com/lojban/nesy/internal/semantics"
)

// Session owns one reasoning session's compiler, reasoning engine, and
// dictionary: compiler state lives for the session's lifetime, and the
// reasoning engine is shared and mutex-guarded.
type Session struct {
	dict            *dictionary.Dictionary
	compiler        *semantics.Compiler
	engine          *reasoning.Engine
	log             hclog.Logger
	saturationLimit int
}

// New returns a Session backed by dict (pass dictionary.New() for an
// arity-2-default session). saturationLimit <= 0 uses
// reasoning.DefaultSaturationLimit.
func New(dict *dictionary.Dictionary, saturationLimit int, log hclog.Logger) (*Session, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	compiler := semantics.New(dict)
	engine, err := reasoning.New(compiler.Interner)
	if err != nil {
		return nil, fmt.Errorf("session: starting reasoning engine: %w", err)
	}
	return &Session{
		dict:            dict,
		compiler:        compiler,
		engine:          engine,
		log:             log,
		saturationLimit: saturationLimit,
	}, nil
}

// Compile parses and semantically compiles one utterance, returning one
// LogicalForm per sentence found in it (normally one, for the
// single-sentence-per-line REPL contract).
func (s *Session) Compile(utterance string) ([]*logic.Form, error) {
	buf, err := ast.Build(utterance)
	if err != nil {
		return nil, fmt.Errorf("session: parsing %q: %w", utterance, err)
	}
	return s.compiler.CompileBuffer(buf), nil
}

// Assert compiles utterance and asserts every resulting LogicalForm into
// the reasoning engine. A parse failure is returned at once. An assert
// failure on one form is recorded but does not prevent the other forms in
// the same utterance from being tried; the returned error is the aggregate
// (nil if everything succeeded).
func (s *Session) Assert(utterance string) error {
	forms, err := s.Compile(utterance)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for _, f := range forms {
		if err := s.engine.AssertFact(f); err != nil {
			s.log.Error("assert failed", "utterance", utterance, "error", err)
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

// Query compiles utterance and reports whether every resulting LogicalForm
// is entailed by the reasoning engine's current (saturated) fact store. A
// multi-sentence query is true only if all of its sentences are.
func (s *Session) Query(ctx context.Context, utterance string) (bool, error) {
	forms, err := s.Compile(utterance)
	if err != nil {
		return false, err
	}
	if len(forms) == 0 {
		return false, nil
	}

	for _, f := range forms {
		ok, err := s.engine.QueryEntailment(ctx, f, s.saturationLimit)
		if err != nil {
			// Engine errors short-circuit: unlike a local compile error on one
			// sentence, a reasoning-engine failure means the fact store's
			// state is no longer trustworthy.
			return false, fmt.Errorf("session: querying %q: %w", utterance, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Dictionary returns the session's backing word-arity table.
func (s *Session) Dictionary() *dictionary.Dictionary {
	return s.dict
}
