package types

// Sensor defines the observer surface the core publishes to. The UI layer (or anything
// else) registers callbacks; core components invoke them through these methods and never
// depend on a specific subscriber.
//
// Registration and registry mutation happen on the consumer thread, so callbacks must be
// cheap and must not call back into the registry.
type Sensor interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	ConnectMeter(...Meter)

	RegisterOnTraceRegistered(callback ...func(ComponentMetadata, Trace))
	RegisterOnTraceRemoved(callback ...func(ComponentMetadata, int))
	RegisterOnStatusChanged(callback ...func(ComponentMetadata, string))
	RegisterOnToolRunStart(callback ...func(ComponentMetadata, string))
	RegisterOnToolRunComplete(callback ...func(ComponentMetadata, string))
	RegisterOnToolRunError(callback ...func(ComponentMetadata, string, error))
	RegisterOnPeakDetectionWarning(callback ...func(ComponentMetadata, int, int))

	InvokeOnTraceRegistered(meta ComponentMetadata, trace Trace)
	InvokeOnTraceRemoved(meta ComponentMetadata, id int)
	InvokeOnStatusChanged(meta ComponentMetadata, status string)
	InvokeOnToolRunStart(meta ComponentMetadata, name string)
	InvokeOnToolRunComplete(meta ComponentMetadata, name string)
	InvokeOnToolRunError(meta ComponentMetadata, name string, err error)
	InvokeOnPeakDetectionWarning(meta ComponentMetadata, found int, minimum int)
}
