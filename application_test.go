package qcad

import "testing"

func TestAccessorChainPropagatesAbsence(t *testing.T) {
	var app *Application
	if app.MainWindow() != nil {
		t.Error("nil application should have nil main window")
	}
	if app.DocumentInterface() != nil {
		t.Error("nil application should have nil document interface")
	}
	if app.Document() != nil {
		t.Error("nil application should have nil document")
	}

	app = NewApplication()
	if app.MainWindow() != nil || app.Document() != nil {
		t.Error("empty application should resolve nil at every link")
	}

	app.SetMainWindow(NewMainWindow(nil))
	if app.MainWindow() == nil {
		t.Fatal("main window should be set")
	}
	if app.DocumentInterface() != nil || app.Document() != nil {
		t.Error("window without document interface should resolve nil")
	}
}

func TestWithDocumentOption(t *testing.T) {
	doc := NewDocument()
	app := NewApplication(WithDocument(doc))

	if app.Document() != doc {
		t.Error("WithDocument should make the document active")
	}
	if app.DocumentInterface() == nil {
		t.Error("WithDocument should create a document interface")
	}
}

func TestWithDocumentInterfaceOption(t *testing.T) {
	di := NewDocumentInterface(nil)
	app := NewApplication(WithDocumentInterface(di))

	if app.DocumentInterface() != di {
		t.Error("WithDocumentInterface should make the interface active")
	}
	if app.Document() == nil {
		t.Error("interface should carry a default document")
	}
}

func TestSwapDocumentInterface(t *testing.T) {
	app := NewApplication(WithDocument(NewDocument()))
	s := NewScript(app)

	first := app.Document()
	if _, err := s.AddPoint(0, 0); err != nil {
		t.Fatalf("AddPoint: %v", err)
	}

	// Swapping the active document redirects subsequent calls.
	second := NewDocument()
	app.MainWindow().SetDocumentInterface(NewDocumentInterface(second))
	if _, err := s.AddPoint(1, 1); err != nil {
		t.Fatalf("AddPoint: %v", err)
	}

	if first.EntityCount() != 1 || second.EntityCount() != 1 {
		t.Errorf("entity counts = %d, %d, want 1, 1",
			first.EntityCount(), second.EntityCount())
	}
}
