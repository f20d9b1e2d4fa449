package script

import (
	"github.com/biiclasses/bii/vector"
	lua "github.com/yuin/gopher-lua"
)

const vectorTypeName = "bii.vector"

type luaVector = vector.Vector[lua.LValue]

var vectorMethods = map[string]lua.LGFunction{
	"add_back":    vectorAddBack,
	"remove_back": vectorRemoveBack,
	"remove":      vectorRemove,
	"insert":      vectorInsert,
	"merge":       vectorMerge,
	"inner":       vectorInner,
	"swap":        vectorSwap,
	"check":       vectorCheck,
	"set":         vectorSet,
	"front":       vectorFront,
	"back":        vectorBack,
	"reserve":     vectorReserve,
	"reduce":      vectorReduce,
	"clear":       vectorClear,
	"size":        vectorSize,
	"capacity":    vectorCapacity,
	"empty":       vectorEmpty,
	"open":        vectorOpen,
	"values":      vectorValues,
	"reversed":    vectorReversed,
	"clone":       vectorClone,
	"equals":      vectorEquals,
}

func registerVector(L *lua.LState) {
	mt := L.NewTypeMetatable(vectorTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), vectorMethods))
	L.SetField(mt, "__tostring", L.NewFunction(vectorToString))
	L.SetField(mt, "__len", L.NewFunction(vectorSize))
	L.SetField(mt, "__concat", L.NewFunction(vectorConcat))

	L.SetGlobal("vector", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new":    vectorNew,
		"of":     vectorOf,
		"filled": vectorFilled,
	}))
}

func pushVector(L *lua.LState, v *luaVector) int {
	ud := L.NewUserData()
	ud.Value = v
	L.SetMetatable(ud, L.GetTypeMetatable(vectorTypeName))
	L.Push(ud)
	return 1
}

func checkVector(L *lua.LState, n int) *luaVector {
	ud := L.CheckUserData(n)
	if v, ok := ud.Value.(*luaVector); ok {
		return v
	}

	L.ArgError(n, "vector expected")
	return nil
}

func vectorNew(L *lua.LState) int {
	if L.GetTop() == 0 {
		return pushVector(L, vector.New[lua.LValue]())
	}

	v, err := vector.NewSized[lua.LValue](L.CheckInt(1))
	if err != nil {
		return raise(L, err)
	}
	return pushVector(L, v)
}

func vectorOf(L *lua.LState) int {
	return pushVector(L, vector.Of(varargs(L, 1)...))
}

func vectorFilled(L *lua.LState) int {
	v, err := vector.NewFilled(L.CheckInt(1), L.CheckAny(2))
	if err != nil {
		return raise(L, err)
	}
	return pushVector(L, v)
}

func vectorAddBack(L *lua.LState) int {
	v := checkVector(L, 1)
	for _, value := range varargs(L, 2) {
		v.AddBack(value)
	}
	return 0
}

func vectorRemoveBack(L *lua.LState) int {
	value, err := checkVector(L, 1).RemoveBack()
	if err != nil {
		return raise(L, err)
	}
	L.Push(value)
	return 1
}

func vectorRemove(L *lua.LState) int {
	if err := checkVector(L, 1).Remove(L.CheckInt(2)); err != nil {
		return raise(L, err)
	}
	return 0
}

func vectorInsert(L *lua.LState) int {
	if err := checkVector(L, 1).Insert(L.CheckAny(2), L.CheckInt(3)); err != nil {
		return raise(L, err)
	}
	return 0
}

func vectorMerge(L *lua.LState) int {
	checkVector(L, 1).Merge(checkVector(L, 2))
	return 0
}

func vectorInner(L *lua.LState) int {
	inner, err := checkVector(L, 1).InnerVec(L.CheckInt(2), L.CheckInt(3))
	if err != nil {
		return raise(L, err)
	}
	return pushVector(L, inner)
}

func vectorSwap(L *lua.LState) int {
	if err := checkVector(L, 1).Swap(L.CheckInt(2), L.CheckInt(3)); err != nil {
		return raise(L, err)
	}
	return 0
}

func vectorCheck(L *lua.LState) int {
	value, err := checkVector(L, 1).Check(L.CheckInt(2))
	if err != nil {
		return raise(L, err)
	}
	L.Push(value)
	return 1
}

func vectorSet(L *lua.LState) int {
	slot, err := checkVector(L, 1).CheckMut(L.CheckInt(2))
	if err != nil {
		return raise(L, err)
	}
	*slot = L.CheckAny(3)
	return 0
}

func vectorFront(L *lua.LState) int {
	value, err := checkVector(L, 1).Front()
	if err != nil {
		return raise(L, err)
	}
	L.Push(value)
	return 1
}

func vectorBack(L *lua.LState) int {
	value, err := checkVector(L, 1).Back()
	if err != nil {
		return raise(L, err)
	}
	L.Push(value)
	return 1
}

func vectorReserve(L *lua.LState) int {
	if err := checkVector(L, 1).Reserve(L.CheckInt(2)); err != nil {
		return raise(L, err)
	}
	return 0
}

func vectorReduce(L *lua.LState) int {
	checkVector(L, 1).Reduce()
	return 0
}

func vectorClear(L *lua.LState) int {
	checkVector(L, 1).Clear()
	return 0
}

func vectorSize(L *lua.LState) int {
	L.Push(lua.LNumber(checkVector(L, 1).Size()))
	return 1
}

func vectorCapacity(L *lua.LState) int {
	L.Push(lua.LNumber(checkVector(L, 1).Capacity()))
	return 1
}

func vectorEmpty(L *lua.LState) int {
	L.Push(lua.LBool(checkVector(L, 1).Empty()))
	return 1
}

func vectorOpen(L *lua.LState) int {
	L.Push(lua.LNumber(checkVector(L, 1).Open()))
	return 1
}

func vectorValues(L *lua.LState) int {
	L.Push(toTable(L, checkVector(L, 1).Values()))
	return 1
}

func vectorReversed(L *lua.LState) int {
	v := checkVector(L, 1)
	values := make([]lua.LValue, 0, v.Size())
	for it := v.ReverseIter(); it.Next(); {
		values = append(values, it.Value())
	}
	L.Push(toTable(L, values))
	return 1
}

func vectorClone(L *lua.LState) int {
	return pushVector(L, checkVector(L, 1).Clone())
}

func vectorEquals(L *lua.LState) int {
	L.Push(lua.LBool(vector.EqualFunc(checkVector(L, 1), checkVector(L, 2), L.Equal)))
	return 1
}

func vectorToString(L *lua.LState) int {
	L.Push(lua.LString(checkVector(L, 1).String()))
	return 1
}

// vectorConcat implements `a .. b` for two vectors and for a vector joined with a single value.
func vectorConcat(L *lua.LState) int {
	left, right := L.CheckAny(1), L.CheckAny(2)
	lv, lok := asVector(left)
	rv, rok := asVector(right)

	switch {
	case lok && rok:
		return pushVector(L, vector.Join(lv, rv))
	case lok:
		return pushVector(L, vector.Appended(lv, right))
	default:
		// value .. vector appends too, the same as vector .. value.
		return pushVector(L, vector.Appended(rv, left))
	}
}

func asVector(value lua.LValue) (*luaVector, bool) {
	ud, ok := value.(*lua.LUserData)
	if !ok {
		return nil, false
	}

	v, ok := ud.Value.(*luaVector)
	return v, ok
}
