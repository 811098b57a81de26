package model

// Handle is a named model that either loaded or failed to. It never changes
// after construction, so concurrent readers need no locking.
type Handle struct {
	name      string
	path      string
	predictor Predictor
	loadErr   error
}

func NewHandle(name, path string, predictor Predictor) *Handle {
	return &Handle{name: name, path: path, predictor: predictor}
}

func NewFailedHandle(name, path string, loadErr error) *Handle {
	if loadErr == nil {
		loadErr = ErrModelUnavailable
	}
	return &Handle{name: name, path: path, loadErr: loadErr}
}

func (h *Handle) Name() string { return h.name }

func (h *Handle) Path() string { return h.path }

func (h *Handle) Available() bool {
	return h.predictor != nil
}

// LoadErr is the failure recorded at start-up, nil for available handles.
func (h *Handle) LoadErr() error {
	return h.loadErr
}

func (h *Handle) Predict(features []float64) (float64, error) {
	if !h.Available() {
		return 0, ErrModelUnavailable
	}
	return h.predictor.Predict(features)
}

// Registry indexes handles by name and remembers configuration order.
type Registry struct {
	handles map[string]*Handle
	order   []*Handle
}

func NewRegistry(handles ...*Handle) *Registry {
	r := &Registry{handles: make(map[string]*Handle, len(handles))}
	for _, h := range handles {
		if _, dup := r.handles[h.name]; dup {
			continue
		}
		r.handles[h.name] = h
		r.order = append(r.order, h)
	}
	return r
}

func (r *Registry) Lookup(name string) (*Handle, bool) {
	h, ok := r.handles[name]
	return h, ok
}

func (r *Registry) Handles() []*Handle {
	out := make([]*Handle, len(r.order))
	copy(out, r.order)
	return out
}
