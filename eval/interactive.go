package eval

import (
	"bufio"
	"io"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/pkg/errors"

	"lambda/lexer"
	"lambda/parser"
)

// DefaultCacheSize is the number of parsed units a Session remembers.
const DefaultCacheSize = 128

// Options configures a Session. The zero value is usable.
type Options struct {
	Filename  string         // reported in lexer and parser errors
	MaxDepth  int            // see NewContext
	CacheSize int            // parse cache entries, DefaultCacheSize if <= 0
	Logger    *logger.Logger // debug tracing; discarded if nil
}

// Session is one interpreter session: a single root scope that every
// evaluation shares, so a def run once stays visible to later input.
type Session struct {
	Filename string
	ctx      *Context
	globals  *Environment
	cache    *lru.Cache // source text -> parser.Node
	log      *logger.Logger
}

func NewSession(opts Options) (*Session, error) {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create parse cache of size %d", size)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewFromOptions(&logger.Options{SyncWriter: discard{}})
	}
	fn := opts.Filename
	if fn == "" {
		fn = "<stdin>"
	}
	return &Session{
		Filename: fn,
		ctx:      NewContext(opts.MaxDepth),
		globals:  NewEnvironment(nil),
		cache:    cache,
		log:      log,
	}, nil
}

// Globals returns the session's root scope.
func (s *Session) Globals() *Environment { return s.globals }

// Parse turns one unit of source into an AST. Source holding no tokens at
// all (blank, or only a comment) gives a nil node and no error.
func (s *Session) Parse(source string) (parser.Node, error) {
	if v, ok := s.cache.Get(source); ok {
		s.log.Debugf("parse cache hit for %q", source)
		return v.(parser.Node), nil
	}
	tokens, err := lexer.New(s.Filename, source).ScanTokens()
	if err != nil {
		return nil, err
	}
	if len(tokens) == 1 {
		return nil, nil
	}
	node, err := parser.New(s.Filename, tokens).Parse()
	if err != nil {
		return nil, err
	}
	s.log.Debugf("parsed %d tokens into %s", len(tokens)-1, node)
	s.cache.Add(source, node)
	return node, nil
}

// Run parses and evaluates one unit against the root scope. A unit with
// nothing to evaluate yields a nil Value and no error.
func (s *Session) Run(source string) (Value, error) {
	node, err := s.Parse(source)
	if err != nil || node == nil {
		return nil, err
	}
	v, err := s.ctx.Eval(node, s.globals)
	if err != nil {
		s.log.Debugf("evaluation failed with %s", KindOf(err))
		return nil, err
	}
	s.log.Debugf("evaluated to %s %s", v.Kind(), v)
	return v, nil
}

// LineFunc receives the outcome of each non-empty line run by RunLines.
type LineFunc func(lineno int, line string, v Value, err error)

// RunLines runs every line of r as its own unit. A failing line does not
// stop the ones after it; all failures are returned together, each
// wrapped with its line number.
func (s *Session) RunLines(r io.Reader, fn LineFunc) error {
	var result *multierror.Error
	br := bufio.NewReader(r)
	lineno := 0
	for {
		// lines may be arbitrarily long
		text, err := br.ReadString('\n')
		if text != "" {
			lineno++
			s.runLine(lineno, text, fn, &result)
		}
		if err == io.EOF {
			break
		} else if err != nil {
			result = multierror.Append(result, errors.Wrap(err, "failed to read input"))
			break
		}
	}
	return result.ErrorOrNil()
}

func (s *Session) runLine(lineno int, text string, fn LineFunc, result **multierror.Error) {
	line := strings.TrimSpace(text)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	v, err := s.Run(line)
	if err != nil {
		*result = multierror.Append(*result, errors.Wrapf(err, "line %d", lineno))
	}
	if fn != nil {
		fn(lineno, line, v, err)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Sync() error                 { return nil }
