// Package params tracks component parameters across render passes.
//
// A component declares each externally supplied parameter once, at
// construction, by registering a Tracker through a Scope opened on the
// component's Synchronizer:
//
//	scope := c.params.Begin()
//	defer scope.Close()
//
//	b, err := params.Track(scope, "Name", func() string { return c.Name })
//	if err != nil {
//	    return err
//	}
//	_, err = b.OnChange(func(prev, next string) error {
//	    console.Log("name changed from", prev, "to", next)
//	    return nil
//	}).Build()
//
// At every lifecycle checkpoint the host calls SyncAll, which synchronizes
// each tracker in registration order. The first synchronization of a tracker
// only captures the current value. Later synchronizations compare the fetched
// value against the captured one with the tracker's EqualFunc and, on a
// change, commit the new value and then run the synchronous change handler,
// the asynchronous change handler and the bound EventCallback, one after the
// other.
//
// Errors returned by handlers are not recovered: they are returned unchanged
// from Synchronize and SyncAll, and the remaining steps and trackers of that
// pass do not run.
//
// Nothing in this package is safe for concurrent use. A Synchronizer belongs
// to exactly one component instance and is driven from the host's single
// render loop.
package params
