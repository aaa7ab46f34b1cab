package treeql

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/zoobzio/treeql/internal/types"
)

// Result is the machine-mode output: production SQL with dialect bind
// markers, and the bind values in placeholder order.
type Result struct {
	SQL  string
	Args []any
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithDialect selects the placeholder dialect. The default is Common.
func WithDialect(d types.Dialect) Option {
	return func(c *Compiler) { c.dialect = d }
}

// WithKeywords replaces the keyword-casing table.
func WithKeywords(table KeywordTable) Option {
	return func(c *Compiler) { c.keywords = table }
}

// WithSchema attaches a schema collaborator; statements are then
// validated against it before tokenization.
func WithSchema(s Schema) Option {
	return func(c *Compiler) { c.schema = s }
}

// WithLiteralWrapping rewrites literal comparison and insert values
// into direct placeholders during preparation. Requires a schema.
func WithLiteralWrapping() Option {
	return func(c *Compiler) { c.wrapLiterals = true }
}

// WithLogger replaces the diagnostic sink used by the print modes and
// by unknown-keyword reports.
func WithLogger(log *slog.Logger) Option {
	return func(c *Compiler) { c.log = log }
}

// Compiler turns expression-tree statements into SQL text. A Compiler
// is immutable after construction and safe for concurrent use: all
// per-call state lives in a fresh placeholder context.
type Compiler struct {
	dialect      types.Dialect
	keywords     KeywordTable
	schema       Schema
	log          *slog.Logger
	wrapLiterals bool
}

// New creates a Compiler for the common dialect with the default
// keyword table.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		dialect:  types.Common,
		keywords: DefaultKeywords(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Format compiles a statement to production SQL: dialect bind markers
// in the text, bind values in first-seen placeholder order. Bindings
// are always validated in this mode.
func (c *Compiler) Format(stmt *types.Statement, binds Binds) (*Result, error) {
	tokens, ctx, err := c.tokenize(stmt)
	if err != nil {
		return nil, err
	}
	if err := ctx.validateBinds(binds); err != nil {
		return nil, err
	}
	text, unknown := formatSeparated(tokens, " ", c.keywords)
	c.reportUnknown(unknown)
	args, err := ctx.bindValues(binds)
	if err != nil {
		return nil, err
	}
	return &Result{SQL: ctx.resolve(text, resolveMarkers, binds), Args: args}, nil
}

// Pretty compiles a statement to the right-aligned human rendering with
// bound values inlined. Bindings are validated only when supplied, so
// unbound statements stay printable with placeholder forms.
func (c *Compiler) Pretty(stmt *types.Statement, binds Binds) (string, error) {
	tokens, ctx, err := c.tokenize(stmt)
	if err != nil {
		return "", err
	}
	if !binds.empty() {
		if err := ctx.validateBinds(binds); err != nil {
			return "", err
		}
	}
	text, unknown := formatPretty(tokens, c.keywords)
	c.reportUnknown(unknown)
	return ctx.resolve(text, resolveDisplay, binds), nil
}

// Print compiles the compact display rendering, emits it to the
// diagnostic sink, and returns it.
func (c *Compiler) Print(stmt *types.Statement, binds Binds) (string, error) {
	tokens, ctx, err := c.tokenize(stmt)
	if err != nil {
		return "", err
	}
	if !binds.empty() {
		if err := ctx.validateBinds(binds); err != nil {
			return "", err
		}
	}
	text, unknown := formatSeparated(tokens, " ", c.keywords)
	c.reportUnknown(unknown)
	out := ctx.resolve(text, resolveDisplay, binds)
	c.log.Info("statement", "sql", out)
	return out, nil
}

// PrettyPrint compiles the pretty rendering, emits it to the
// diagnostic sink, and returns it.
func (c *Compiler) PrettyPrint(stmt *types.Statement, binds Binds) (string, error) {
	out, err := c.Pretty(stmt, binds)
	if err != nil {
		return "", err
	}
	c.log.Info("statement", "sql", out)
	return out, nil
}

// FormatSeparated compiles a statement joined by an arbitrary
// separator instead of a single space, with dialect markers resolved.
func (c *Compiler) FormatSeparated(stmt *types.Statement, sep string, binds Binds) (*Result, error) {
	tokens, ctx, err := c.tokenize(stmt)
	if err != nil {
		return nil, err
	}
	if err := ctx.validateBinds(binds); err != nil {
		return nil, err
	}
	text, unknown := formatSeparated(tokens, sep, c.keywords)
	c.reportUnknown(unknown)
	args, err := ctx.bindValues(binds)
	if err != nil {
		return nil, err
	}
	return &Result{SQL: ctx.resolve(text, resolveMarkers, binds), Args: args}, nil
}

// tokenize runs preparation and the DML/DDL tokenizer branch, returning
// the token stream and the placeholder context it populated.
func (c *Compiler) tokenize(stmt *types.Statement) ([]types.Token, *paramContext, error) {
	if stmt == nil {
		return nil, nil, NewStructuralError("nil statement")
	}
	if stmt.IsQuery() && stmt.IsDefinition() {
		return nil, nil, NewStructuralError("statement mixes query and definition clauses")
	}

	prepared := stmt
	if c.schema != nil {
		var err error
		prepared, err = prepareStatement(stmt, c.schema, c.wrapLiterals)
		if err != nil {
			return nil, nil, errors.Wrap(err, "validate statement")
		}
	}

	ctx := newParamContext(c.dialect)
	var tokens []types.Token
	var err error
	if prepared.IsDefinition() {
		tokens, err = tokenizeDefinition(prepared, ctx)
	} else {
		tokens, err = tokenizeStatement(prepared, ctx)
	}
	if err != nil {
		return nil, nil, err
	}
	return tokens, ctx, nil
}

// reportUnknown logs unrecognized keywords. Unknown keywords are a soft
// failure: the original text passes through so the formatter stays
// usable while new keywords are added.
func (c *Compiler) reportUnknown(unknown []string) {
	for _, kw := range unknown {
		c.log.Warn("unrecognized keyword", "keyword", kw)
	}
}
