package script

import (
	"github.com/biiclasses/bii/stack"
	lua "github.com/yuin/gopher-lua"
)

const stackTypeName = "bii.stack"

type luaStack = stack.Stack[lua.LValue]

var stackMethods = map[string]lua.LGFunction{
	"push":       stackPush,
	"pull":       stackPull,
	"top":        stackTop,
	"peek":       stackPeek,
	"size":       stackSize,
	"empty":      stackEmpty,
	"push_stack": stackPushStack,
	"clone":      stackClone,
	"equals":     stackEquals,
	"values":     stackValues,
	"clear":      stackClear,
}

func registerStack(L *lua.LState) {
	mt := L.NewTypeMetatable(stackTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), stackMethods))
	L.SetField(mt, "__tostring", L.NewFunction(stackToString))
	L.SetField(mt, "__len", L.NewFunction(stackSize))

	L.SetGlobal("stack", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new": stackNew,
		"of":  stackOf,
	}))
}

func pushStack(L *lua.LState, s *luaStack) int {
	ud := L.NewUserData()
	ud.Value = s
	L.SetMetatable(ud, L.GetTypeMetatable(stackTypeName))
	L.Push(ud)
	return 1
}

func checkStack(L *lua.LState, n int) *luaStack {
	ud := L.CheckUserData(n)
	if s, ok := ud.Value.(*luaStack); ok {
		return s
	}

	L.ArgError(n, "stack expected")
	return nil
}

func stackNew(L *lua.LState) int {
	return pushStack(L, stack.New[lua.LValue]())
}

// stackOf pushes its arguments in order, so the last argument ends up on top.
func stackOf(L *lua.LState) int {
	return pushStack(L, stack.Of(varargs(L, 1)...))
}

func stackPush(L *lua.LState) int {
	s := checkStack(L, 1)
	for _, value := range varargs(L, 2) {
		s.Push(value)
	}
	return 0
}

func stackPull(L *lua.LState) int {
	value, err := checkStack(L, 1).Pull()
	if err != nil {
		return raise(L, err)
	}
	L.Push(value)
	return 1
}

func stackTop(L *lua.LState) int {
	value, err := checkStack(L, 1).Top()
	if err != nil {
		return raise(L, err)
	}
	L.Push(value)
	return 1
}

// stackPeek is the non-raising form of top: it returns nil on an empty stack.
func stackPeek(L *lua.LState) int {
	L.Push(checkStack(L, 1).Peek().OrElse(lua.LNil))
	return 1
}

func stackSize(L *lua.LState) int {
	L.Push(lua.LNumber(checkStack(L, 1).Size()))
	return 1
}

func stackEmpty(L *lua.LState) int {
	L.Push(lua.LBool(checkStack(L, 1).Empty()))
	return 1
}

func stackPushStack(L *lua.LState) int {
	checkStack(L, 1).PushStack(checkStack(L, 2))
	return 0
}

func stackClone(L *lua.LState) int {
	return pushStack(L, checkStack(L, 1).Clone())
}

func stackEquals(L *lua.LState) int {
	L.Push(lua.LBool(stack.EqualFunc(checkStack(L, 1), checkStack(L, 2), L.Equal)))
	return 1
}

// stackValues returns the elements top first.
func stackValues(L *lua.LState) int {
	L.Push(toTable(L, checkStack(L, 1).Values()))
	return 1
}

func stackClear(L *lua.LState) int {
	checkStack(L, 1).Clear()
	return 0
}

func stackToString(L *lua.LState) int {
	L.Push(lua.LString(checkStack(L, 1).String()))
	return 1
}
