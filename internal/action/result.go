package action

// Method records which path ultimately performed (or failed to perform) an
// action.
type Method string

const (
	MethodNative    Method = "native"
	MethodSynthetic Method = "synthetic"
	MethodSetValue  Method = "set-value"
	MethodTypeText  Method = "type-text"
	MethodNone      Method = "none"
	MethodWait      Method = "wait"
)

// Result is the uniform outcome record. It is always returned, success or
// not, and carries the freshest Context so the caller never needs a
// follow-up perception call.
type Result struct {
	Success     bool     `yaml:"success"               json:"success"`
	Description string   `yaml:"description"           json:"description"`
	Method      Method   `yaml:"method"                json:"method"`
	Context     *Context `yaml:"context,omitempty"     json:"context,omitempty"`
	Screenshot  []byte   `yaml:"-"                     json:"screenshot,omitempty"`
}

func failure(method Method, description string, ctx *Context) Result {
	return Result{Success: false, Description: description, Method: method, Context: ctx}
}

func success(method Method, description string, ctx *Context) Result {
	return Result{Success: true, Description: description, Method: method, Context: ctx}
}
