// Package loader registers HTTP features on the serve command's router.
//
// A feature owns its routes and can be switched off without touching the
// server bootstrap. Features load in the order they were registered; the
// first failing Load aborts startup.
//
//	mgr := loader.NewManager()
//	mgr.Register(linecount.NewFeature(svc, log))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader
