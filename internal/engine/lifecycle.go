package engine

// Lifecycle is the subscription registry for scene transitions. It is owned by
// whoever loads and unloads scenes; listeners subscribe explicitly and keep the
// Subscription to leave again, so ordering never depends on when components
// were enabled.
type Lifecycle struct {
	BeforeUnload Event
	AfterLoad    Event
}

// Unload fires BeforeUnload.
func (l *Lifecycle) Unload() {
	l.BeforeUnload.Invoke()
}

// Loaded fires AfterLoad.
func (l *Lifecycle) Loaded() {
	l.AfterLoad.Invoke()
}
