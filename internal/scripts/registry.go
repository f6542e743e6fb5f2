// Package scripts holds the runnable demonstration scripts. A script is a
// linear sequence of harness calls that prints what it does as it goes.
package scripts

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/models"
)

// Harness is the part of the deployment harness scripts use
type Harness interface {
	Deploy(ctx context.Context, contractName string, args ...any) (*models.Instance, error)
	Invoke(ctx context.Context, instance *models.Instance, method string, args ...any) (*models.InvocationResult, error)
	Deployer() common.Address
}

// Script is a named demonstration
type Script struct {
	Name        string
	Description string
	Contracts   []string // contracts the script deploys
	Run         func(ctx context.Context, h Harness, out io.Writer) error
}

// Registry maps script names to scripts
type Registry struct {
	scripts map[string]*Script
}

// NewRegistry creates a registry holding the given scripts
func NewRegistry(scripts ...*Script) *Registry {
	r := &Registry{scripts: make(map[string]*Script)}
	for _, s := range scripts {
		r.scripts[s.Name] = s
	}
	return r
}

// DefaultRegistry returns the built-in scripts
func DefaultRegistry() *Registry {
	return NewRegistry(FooIfElse(), SetMapping())
}

// numberSuffix matches the _19 in foo-IfElse_19
var numberSuffix = regexp.MustCompile(`_\d+$`)

// normalize maps "scripts/foo-IfElse_19.js" and "Foo-IfElse" to "foo-ifelse"
func normalize(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = numberSuffix.ReplaceAllString(name, "")
	return strings.ToLower(name)
}

// Get returns the script registered under name. Paths, extensions and
// numeric suffixes are ignored so script file names like foo-IfElse_19.js work too.
func (r *Registry) Get(name string) (*Script, error) {
	if s, ok := r.scripts[name]; ok {
		return s, nil
	}
	if s, ok := r.scripts[normalize(name)]; ok {
		return s, nil
	}
	return nil, domain.NotFoundErr{
		Kind:        domain.ErrScriptNotFound,
		Name:        name,
		Suggestions: domain.Suggest(normalize(name), r.Names()),
	}
}

// Names returns registered script names, sorted
func (r *Registry) Names() []string {
	names := lo.Keys(r.scripts)
	sort.Strings(names)
	return names
}

// List returns registered scripts sorted by name
func (r *Registry) List() []*Script {
	return lo.Map(r.Names(), func(name string, _ int) *Script {
		return r.scripts[name]
	})
}
