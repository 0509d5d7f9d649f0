package schema

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry manages a collection of named type sets
type Registry struct {
	// mutex protects concurrent access
	mutex sync.RWMutex

	// sets maps set names to their definitions
	sets map[string]*TypeSet
}

// RegistrationOptions configures set registration behavior
type RegistrationOptions struct {
	// AllowOverwrite permits replacing an existing set definition
	AllowOverwrite bool
}

// DefaultRegistrationOptions returns the default registration options
func DefaultRegistrationOptions() RegistrationOptions {
	return RegistrationOptions{
		AllowOverwrite: false,
	}
}

// NewRegistry creates a new type-set registry
func NewRegistry() *Registry {
	return &Registry{
		sets: make(map[string]*TypeSet),
	}
}

// IsEmpty returns true if the registry contains no sets
func (r *Registry) IsEmpty() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.sets) == 0
}

// Count returns the number of sets in the registry
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.sets)
}

// Has returns true if a set with the given name exists
func (r *Registry) Has(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, exists := r.sets[name]
	return exists
}

// Register registers a type set under a name
func (r *Registry) Register(name string, set *TypeSet, opts ...RegistrationOptions) error {
	if name == "" {
		return fmt.Errorf("schema: set name cannot be empty")
	}
	if set == nil {
		return fmt.Errorf("schema: set cannot be nil")
	}

	options := DefaultRegistrationOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.sets[name]; exists && !options.AllowOverwrite {
		return fmt.Errorf("schema: set '%s' already registered", name)
	}
	r.sets[name] = set
	return nil
}

// Get returns a set by name
func (r *Registry) Get(name string) (*TypeSet, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	s, exists := r.sets[name]
	return s, exists
}

// Names returns the registered set names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// YAML declarations ---------------------------------------------------------

// kindConstructors maps declaration-file kind names onto descriptor
// constructors. Only wire-encodable kinds can be declared in YAML; opaque
// Go types have no stable spelling outside the program.
var kindConstructors = map[string]func() Descriptor{
	"bool":   BoolType,
	"i8":     I8Type,
	"u8":     U8Type,
	"i16":    I16Type,
	"u16":    U16Type,
	"i32":    I32Type,
	"u32":    U32Type,
	"i64":    I64Type,
	"u64":    U64Type,
	"f32":    F32Type,
	"f64":    F64Type,
	"string": StringType,
	"bytes":  BytesType,
}

type setDecl struct {
	Name  string   `yaml:"name"`
	Types []string `yaml:"types"`
}

type registryDecl struct {
	TypeSets []setDecl `yaml:"typesets"`
}

// ParseDescriptor resolves a declaration-file kind name to its descriptor.
func ParseDescriptor(name string) (Descriptor, error) {
	ctor, ok := kindConstructors[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("schema: '%s': %w", name, ErrUnknownKind)
	}
	return ctor(), nil
}

// LoadYAML parses a YAML document of named type-set declarations and
// registers every set. The document shape is:
//
//	typesets:
//	  - name: json-scalar
//	    types: [string, i64, f64, bool]
//
// Each declared set goes through the same NewTypeSet validation as sets
// assembled in code; the first invalid declaration aborts the load.
func (r *Registry) LoadYAML(data []byte, opts ...RegistrationOptions) error {
	var decl registryDecl
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return fmt.Errorf("schema: parsing declarations: %w", err)
	}
	for _, sd := range decl.TypeSets {
		members := make([]Descriptor, 0, len(sd.Types))
		for _, tn := range sd.Types {
			d, err := ParseDescriptor(tn)
			if err != nil {
				return fmt.Errorf("schema: set '%s': %w", sd.Name, err)
			}
			members = append(members, d)
		}
		set, err := NewTypeSet(members...)
		if err != nil {
			return fmt.Errorf("schema: set '%s': %w", sd.Name, err)
		}
		if err := r.Register(sd.Name, set, opts...); err != nil {
			return err
		}
	}
	return nil
}
