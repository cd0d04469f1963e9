package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates and looks up calculators by key.
type CalculatorFactory interface {
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// MustGet is like Get but panics if name is unknown.
	MustGet(name string) Calculator
	// List returns the registered keys in sorted order.
	List() []string
	// GetAll returns a copy of the key to calculator mapping.
	GetAll() map[string]Calculator
	// Register adds or replaces a calculator.
	Register(name string, calc Calculator)
}

// DefaultFactory is the map-backed CalculatorFactory. It is safe for
// concurrent use.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory with the naive, iterative and memo
// calculators registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{calculators: make(map[string]Calculator)}
	f.Register(AlgoNaive, NewCalculator(NaiveRecursion{}))
	f.Register(AlgoIterative, NewCalculator(Iterative{}))
	f.Register(AlgoMemo, NewCalculator(MemoizedRecursion{}))
	return f
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns a process-wide default factory.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}

// Get implements CalculatorFactory.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	calc, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
	return calc, nil
}

// MustGet implements CalculatorFactory.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return calc
}

// List implements CalculatorFactory.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, 0, len(f.calculators))
	for k := range f.calculators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll implements CalculatorFactory.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make(map[string]Calculator, len(f.calculators))
	for k, v := range f.calculators {
		all[k] = v
	}
	return all
}

// Register implements CalculatorFactory.
func (f *DefaultFactory) Register(name string, calc Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = calc
}
