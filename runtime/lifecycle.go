package runtime

import "context"

// Initializer is implemented by components that need one-time setup. OnInit
// runs once, after the first parameter batch was delivered.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to every
// parameter delivery, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// PropUpdater copies parameters from a freshly constructed carrier into the
// preserved instance on re-render.
type PropUpdater interface {
	ApplyProps(source Component)
}

// Cleaner is implemented by components that release resources when they
// leave the tree.
type Cleaner interface {
	OnDestroy()
}

// ParameterSynchronizer is implemented by components tracking their
// parameters. ComponentBase implements it.
type ParameterSynchronizer interface {
	SyncParameters(ctx context.Context, cp Checkpoint) error
}

// Checkpoint identifies the lifecycle point at which parameters are
// synchronized.
type Checkpoint int

const (
	// CheckpointSetParameters follows every parameter delivery.
	CheckpointSetParameters Checkpoint = iota
	// CheckpointInitialized follows OnInit, once per instance.
	CheckpointInitialized
	// CheckpointParametersSet follows OnParametersSet, after every delivery.
	CheckpointParametersSet
)

func (c Checkpoint) String() string {
	switch c {
	case CheckpointSetParameters:
		return "SetParameters"
	case CheckpointInitialized:
		return "Initialized"
	case CheckpointParametersSet:
		return "ParametersSet"
	}
	return "Unknown"
}
