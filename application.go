package qcad

// MainWindow is the application's top-level window context. In this
// library it carries no UI; it exists so that the accessor chain used by
// scripting environments (application -> main window -> document
// interface -> document) has its usual shape.
type MainWindow struct {
	docInterface *DocumentInterface
}

// NewMainWindow creates a main window holding the given document interface.
func NewMainWindow(di *DocumentInterface) *MainWindow {
	return &MainWindow{docInterface: di}
}

// DocumentInterface returns the current document interface, or nil.
func (w *MainWindow) DocumentInterface() *DocumentInterface {
	if w == nil {
		return nil
	}
	return w.docInterface
}

// SetDocumentInterface replaces the current document interface.
func (w *MainWindow) SetDocumentInterface(di *DocumentInterface) {
	w.docInterface = di
}

// Application is the process-level context scripts resolve their document
// from. Every link in the accessor chain may be absent; accessors return
// nil instead of failing so callers can decide how to react.
type Application struct {
	mainWindow *MainWindow
}

// NewApplication creates an application context.
// Without options the application has no main window and no document.
func NewApplication(opts ...ApplicationOption) *Application {
	app := &Application{}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// MainWindow returns the active main window, or nil.
func (a *Application) MainWindow() *MainWindow {
	if a == nil {
		return nil
	}
	return a.mainWindow
}

// SetMainWindow replaces the active main window.
func (a *Application) SetMainWindow(w *MainWindow) {
	a.mainWindow = w
}

// DocumentInterface resolves the active document interface, or nil if any
// link in the chain is absent.
func (a *Application) DocumentInterface() *DocumentInterface {
	return a.MainWindow().DocumentInterface()
}

// Document resolves the active document, or nil if any link in the chain
// is absent.
func (a *Application) Document() *Document {
	return a.DocumentInterface().Document()
}
