package ax

// Element is a live handle to one node of the OS accessibility tree.
//
// Attribute accessors are best-effort: a read that fails inside the binding
// is reported as absent data (empty string, ok=false), never as an error.
// Only command methods (Perform, SetValue) surface binding errors, and even
// those are converted to failure results at the dispatcher boundary.
//
// The accessibility graph behind an Element is untrusted: it may contain
// back-references and is unbounded in size. Identity() exists so traversals
// can keep a per-call visited set.
type Element interface {
	// Identity returns an opaque token that is stable for the lifetime of
	// the underlying native handle. Two Elements wrapping the same native
	// node return the same token within a single process.
	Identity() uint64

	// Ident returns the element's stable identifier attribute, or "" when
	// the toolkit exposes none.
	Ident() string

	Role() string
	Title() string
	Description() string
	RoleDescription() string
	Value() string

	// URL returns the document URL for web-area/document elements, "" otherwise.
	URL() string

	Position() (Point, bool)
	Size() (Size, bool)
	Enabled() bool
	Focused() bool

	// Actions returns the element's supported accessibility action names
	// in short form (e.g. "press", "confirm", "showmenu").
	Actions() []string

	Children() []Element

	// Perform invokes a named accessibility action on the element.
	Perform(action string) error

	// SetValue writes the element's value attribute directly. Some toolkits
	// report success and silently drop the write; callers must read the
	// value back to confirm.
	SetValue(value string) error
}

// App is a live handle to a running application.
type App interface {
	Name() string
	PID() int

	// Root returns the application's accessibility root element.
	Root() Element

	Windows() []Element
	FocusedWindow() Element

	// FocusedElement returns the element holding keyboard focus within the
	// app, or nil if none.
	FocusedElement() Element

	Frontmost() bool

	// Activate brings the application to the foreground.
	Activate() error
}

// Driver resolves applications on the host.
type Driver interface {
	FrontmostApp() (App, error)
	AppNamed(name string) (App, error)
}

// Input simulates pointer and keyboard events.
type Input interface {
	Click(x, y int, button MouseButton, count int) error
	TypeText(text string, delayMs int) error

	// KeyTap presses a key with optional modifiers. The binding guarantees
	// modifier release even when the tap itself fails.
	KeyTap(key string, modifiers ...string) error

	Scroll(x, y, dx, dy int) error
}

// Screenshotter captures the screen for debug annotation.
type Screenshotter interface {
	// CaptureScreen returns a PNG of the full screen in screen points.
	CaptureScreen() ([]byte, error)
}

// Point is a screen position in points.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Size is an element extent in points.
type Size struct {
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}
