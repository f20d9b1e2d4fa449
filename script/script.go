// Package script embeds a Lua runtime exposing bii vectors and stacks.
//
// Scripts get two global modules:
//
//	vector.new([capacity]), vector.of(...), vector.filled(n, value)
//	stack.new(), stack.of(...)
//
// Positions and indexes are zero-based, matching the Go API. A failing
// container operation raises a Lua error carrying the Go error message.
package script

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/biiclasses/bii/filesystem"
	"github.com/biiclasses/bii/log"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// Options configures a Lua state.
type Options struct {
	// Out receives everything the script prints.
	Out io.Writer

	// PreloadLibs makes the extended module set (strings, json, regexp, ...) requirable.
	PreloadLibs bool
}

// NewState returns a Lua state with the vector and stack modules registered.
func NewState(options *Options) *lua.LState {
	L := lua.NewState()
	if options.PreloadLibs {
		libs.Preload(L)
	}

	registerVector(L)
	registerStack(L)

	out := options.Out
	if out == nil {
		out = io.Discard
	}
	L.SetGlobal("print", L.NewFunction(printTo(out)))

	return L
}

// Run loads and executes the script at path.
func Run(path string, options *Options) error {
	L := NewState(options)
	defer L.Close()

	log.Infof("running script %s", path)
	if err := PreCompileAndLoad(L, path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

// RunString executes source under the chunk name name.
func RunString(name, source string, options *Options) error {
	L := NewState(options)
	defer L.Close()

	fn, err := L.Load(strings.NewReader(source), name)
	if err != nil {
		return err
	}

	L.Push(fn)
	return L.PCall(0, lua.MultRet, nil)
}

var bytecodeCache sync.Map

// PreCompileAndLoad executes the script at path in L, reusing compiled bytecode
// while the file's size and modification time are unchanged.
func PreCompileAndLoad(L *lua.LState, path string) error {
	fs := filesystem.API()
	info, err := fs.Stat(path)
	if err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("%s@%d@%d", path, info.Size(), info.ModTime().UnixNano())
	if cached, ok := bytecodeCache.Load(cacheKey); ok {
		log.Debugf("bytecode cache hit for %s", path)
		L.Push(L.NewFunctionFromProto(cached.(*lua.FunctionProto)))
		return L.PCall(0, lua.MultRet, nil)
	}

	file, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return err
	}
	bytecodeCache.Store(cacheKey, proto)

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

func printTo(out io.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(out, strings.Join(parts, "\t"))
		return 0
	}
}

// raise converts a Go error into a Lua error.
func raise(L *lua.LState, err error) int {
	L.RaiseError("%s", err.Error())
	return 0
}

// varargs collects the arguments from position from to the top of the stack.
func varargs(L *lua.LState, from int) []lua.LValue {
	values := make([]lua.LValue, 0, max(L.GetTop()-from+1, 0))
	for i := from; i <= L.GetTop(); i++ {
		values = append(values, L.Get(i))
	}
	return values
}

func toTable(L *lua.LState, values []lua.LValue) *lua.LTable {
	tbl := L.CreateTable(len(values), 0)
	for _, v := range values {
		tbl.Append(v)
	}
	return tbl
}
