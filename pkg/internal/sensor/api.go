package sensor

import (
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

func (s *Sensor) GetMeters() []types.Meter {
	s.metersLock.Lock()
	defer s.metersLock.Unlock()
	return s.meters
}

func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	oldMetadata := s.componentMetadata
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
	newMetadata := s.componentMetadata
	s.metadataLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: SetComponentMetadata, old: %v, new: %v => Component metadata updated", oldMetadata.ID, oldMetadata, newMetadata)
}

// RegisterOnTraceRegistered registers callbacks fired when the registry admits a trace.
func (s *Sensor) RegisterOnTraceRegistered(callback ...func(types.ComponentMetadata, types.Trace)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnTraceRegistered = append(s.OnTraceRegistered, callback...)
}

// RegisterOnTraceRemoved registers callbacks fired when a trace leaves the registry.
func (s *Sensor) RegisterOnTraceRemoved(callback ...func(types.ComponentMetadata, int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnTraceRemoved = append(s.OnTraceRemoved, callback...)
}

// RegisterOnStatusChanged registers callbacks fired on status-line updates.
func (s *Sensor) RegisterOnStatusChanged(callback ...func(types.ComponentMetadata, string)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnStatusChanged = append(s.OnStatusChanged, callback...)
}

// RegisterOnToolRunStart registers callbacks fired when a tool run launches.
func (s *Sensor) RegisterOnToolRunStart(callback ...func(types.ComponentMetadata, string)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnToolRunStart = append(s.OnToolRunStart, callback...)
}

// RegisterOnToolRunComplete registers callbacks fired when a tool run succeeds.
func (s *Sensor) RegisterOnToolRunComplete(callback ...func(types.ComponentMetadata, string)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnToolRunComplete = append(s.OnToolRunComplete, callback...)
}

// RegisterOnToolRunError registers callbacks fired when a tool run fails.
func (s *Sensor) RegisterOnToolRunError(callback ...func(types.ComponentMetadata, string, error)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnToolRunError = append(s.OnToolRunError, callback...)
}

// RegisterOnPeakDetectionWarning registers callbacks fired when detection finds fewer
// candidates than a run asked for.
func (s *Sensor) RegisterOnPeakDetectionWarning(callback ...func(types.ComponentMetadata, int, int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.OnPeakDetectionWarning = append(s.OnPeakDetectionWarning, callback...)
}

func (s *Sensor) InvokeOnTraceRegistered(meta types.ComponentMetadata, trace types.Trace) {
	for _, callback := range s.OnTraceRegistered {
		callback(meta, trace)
	}
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: OnTraceRegistered, trace: %d => Trace registered", meta.ID, trace.ID())
}

func (s *Sensor) InvokeOnTraceRemoved(meta types.ComponentMetadata, id int) {
	for _, callback := range s.OnTraceRemoved {
		callback(meta, id)
	}
	s.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: OnTraceRemoved, trace: %d => Trace removed", meta.ID, id)
}

func (s *Sensor) InvokeOnStatusChanged(meta types.ComponentMetadata, status string) {
	for _, callback := range s.OnStatusChanged {
		callback(meta, status)
	}
}

func (s *Sensor) InvokeOnToolRunStart(meta types.ComponentMetadata, name string) {
	for _, callback := range s.OnToolRunStart {
		callback(meta, name)
	}
	s.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: OnToolRunStart, run: %s => Tool run started", meta.ID, name)
}

func (s *Sensor) InvokeOnToolRunComplete(meta types.ComponentMetadata, name string) {
	for _, callback := range s.OnToolRunComplete {
		callback(meta, name)
	}
	s.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: OnToolRunComplete, run: %s => Tool run completed", meta.ID, name)
}

func (s *Sensor) InvokeOnToolRunError(meta types.ComponentMetadata, name string, err error) {
	for _, callback := range s.OnToolRunError {
		callback(meta, name, err)
	}
	s.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: OnToolRunError, run: %s, error: %v => Tool run failed", meta.ID, name, err)
}

func (s *Sensor) InvokeOnPeakDetectionWarning(meta types.ComponentMetadata, found int, minimum int) {
	for _, callback := range s.OnPeakDetectionWarning {
		callback(meta, found, minimum)
	}
	s.NotifyLoggers(types.WarnLevel, "component: %s, level: WARN, result: SUCCESS, event: OnPeakDetectionWarning, found: %d, minimum: %d => Fewer peaks than requested", meta.ID, found, minimum)
}
