package qcad

// ApplicationOption configures an Application during creation.
// Use functional options to customize the host context.
//
// Example:
//
//	// Empty application, no document
//	app := qcad.NewApplication()
//
//	// Application with a fresh document ready for scripting
//	app := qcad.NewApplication(qcad.WithDocument(qcad.NewDocument()))
type ApplicationOption func(*Application)

// WithMainWindow sets the application's main window.
func WithMainWindow(w *MainWindow) ApplicationOption {
	return func(a *Application) {
		a.mainWindow = w
	}
}

// WithDocument wires a document through a fresh document interface and
// main window, making it the application's active document.
func WithDocument(doc *Document) ApplicationOption {
	return func(a *Application) {
		a.mainWindow = NewMainWindow(NewDocumentInterface(doc))
	}
}

// WithDocumentInterface wires an existing document interface through a
// fresh main window.
func WithDocumentInterface(di *DocumentInterface) ApplicationOption {
	return func(a *Application) {
		a.mainWindow = NewMainWindow(di)
	}
}
