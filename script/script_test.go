package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/biiclasses/bii/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func run(source string) (string, error) {
	var out bytes.Buffer
	err := RunString("test", source, &Options{Out: &out})
	return strings.TrimSpace(out.String()), err
}

func TestVectorModule(t *testing.T) {
	Convey("Given the vector module", t, func() {
		Convey("When building a vector from values", func() {
			out, err := run(`
				local v = vector.of(1, 2, 3)
				print(v, #v, v:capacity(), v:open())
			`)

			Convey("It should render and report its sizes", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "{1, 2, 3}\t3\t10\t7")
			})
		})

		Convey("When mutating through methods", func() {
			out, err := run(`
				local v = vector.new(0)
				v:add_back("a", "b", "c")
				v:insert("x", 1)
				v:remove(0)
				v:swap(0, 2)
				v:set(1, "y")
				print(v, v:front(), v:back(), v:capacity())
			`)

			Convey("It should apply them in order", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "{c, y, x}\tc\tx\t4")
			})
		})

		Convey("When slicing with inner", func() {
			out, err := run(`
				local v = vector.of(10, 20, 30, 40)
				print(v:inner(1, 3), v:inner(2, 2):empty())
			`)

			Convey("It should copy the half-open range", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "{20, 30}\ttrue")
			})
		})

		Convey("When iterating", func() {
			out, err := run(`
				local v = vector.of(1, 2, 3)
				print(table.concat(v:values(), ","), table.concat(v:reversed(), ","))
			`)

			Convey("It should yield both directions", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "1,2,3\t3,2,1")
			})
		})

		Convey("When concatenating", func() {
			out, err := run(`
				local a, b = vector.of(1, 2), vector.of(3)
				print(a .. b, a .. 9, 0 .. b, a)
			`)

			Convey("It should build new vectors and leave operands alone", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "{1, 2, 3}\t{1, 2, 9}\t{3, 0}\t{1, 2}")
			})
		})

		Convey("When a value comes before the vector", func() {
			out, err := run(`
				local v = vector.of(1, 2)
				local w = 0 .. v
				print(w, w:back(), v)
			`)

			Convey("It should copy the vector and append the value", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "{1, 2, 0}\t0\t{1, 2}")
			})
		})

		Convey("When cloning and comparing", func() {
			out, err := run(`
				local a = vector.filled(2, "z")
				local b = a:clone()
				b:add_back("z")
				print(a:equals(a:clone()), a:equals(b), a:capacity())
			`)

			Convey("It should keep copies independent", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "true\tfalse\t4")
			})
		})

		Convey("When reading from an empty vector", func() {
			_, err := run(`vector.new():front()`)

			Convey("It should raise a Lua error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "empty container")
			})
		})

		Convey("When indexing out of range", func() {
			_, err := run(`vector.of(1):check(5)`)

			Convey("It should raise a Lua error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "out of range")
			})
		})

		Convey("When the error is caught with pcall", func() {
			out, err := run(`
				local ok = pcall(function() vector.of(1, 2):inner(2, 1) end)
				print(ok)
			`)

			Convey("It should be recoverable", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "false")
			})
		})
	})
}

func TestStackModule(t *testing.T) {
	Convey("Given the stack module", t, func() {
		Convey("When pushing and pulling", func() {
			out, err := run(`
				local s = stack.of(1, 2, 3)
				local top = s:pull()
				print(top, s, #s, s:top())
			`)

			Convey("It should be last in first out", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "3\t{2, 1}\t2\t2")
			})
		})

		Convey("When pushing another stack", func() {
			out, err := run(`
				local a, b = stack.of(1, 2), stack.of(3, 4)
				a:push_stack(b)
				a:push_stack(a)
				print(a:size(), table.concat(a:values(), ","))
			`)

			Convey("It should put the other top on top and terminate on itself", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "8\t4,3,2,1,4,3,2,1")
			})
		})

		Convey("When peeking at an empty stack", func() {
			out, err := run(`print(stack.new():peek())`)

			Convey("It should return nil", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "nil")
			})
		})

		Convey("When cloning, comparing and clearing", func() {
			out, err := run(`
				local a = stack.of("x", "y")
				local b = a:clone()
				b:clear()
				print(a:equals(a:clone()), a:equals(b), b:empty(), a:size())
			`)

			Convey("It should keep copies independent", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "true\tfalse\ttrue\t2")
			})
		})

		Convey("When pulling from an empty stack", func() {
			_, err := run(`stack.new():pull()`)

			Convey("It should raise a Lua error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "empty container")
			})
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a script on disk", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		fs := filesystem.API()
		So(fs.WriteFile("/scripts/hello.lua", []byte(`print(vector.of("a"))`), 0o644), ShouldBeNil)

		var out bytes.Buffer
		options := &Options{Out: &out}

		Convey("When running it twice", func() {
			So(Run("/scripts/hello.lua", options), ShouldBeNil)
			So(Run("/scripts/hello.lua", options), ShouldBeNil)

			Convey("It should produce the same output from the cached bytecode", func() {
				So(out.String(), ShouldEqual, "{a}\n{a}\n")
			})
		})

		Convey("When the script changes between runs", func() {
			So(Run("/scripts/hello.lua", options), ShouldBeNil)
			So(fs.WriteFile("/scripts/hello.lua", []byte(`print(stack.of(1, 2, 3))`), 0o644), ShouldBeNil)
			So(Run("/scripts/hello.lua", options), ShouldBeNil)

			Convey("It should recompile", func() {
				So(out.String(), ShouldEqual, "{a}\n{3, 2, 1}\n")
			})
		})

		Convey("When the script does not exist", func() {
			err := Run("/scripts/missing.lua", options)

			Convey("It should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the script has a syntax error", func() {
			So(fs.WriteFile("/scripts/broken.lua", []byte(`print(`), 0o644), ShouldBeNil)
			err := Run("/scripts/broken.lua", options)

			Convey("It should fail", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "broken.lua")
			})
		})

		Convey("When extended libraries are preloaded", func() {
			So(fs.WriteFile("/scripts/libs.lua", []byte(`
				local json = require("json")
				print(json.encode(vector.of("a", "b"):values()))
			`), 0o644), ShouldBeNil)
			options.PreloadLibs = true

			Convey("It should make them requirable", func() {
				So(Run("/scripts/libs.lua", options), ShouldBeNil)
				So(out.String(), ShouldEqual, "[\"a\",\"b\"]\n")
			})
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a scripts directory", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		fs := filesystem.API()
		for _, name := range []string{"stack_demo.lua", "vector_demo.lua", "notes.txt"} {
			So(fs.WriteFile("/scripts/"+name, []byte("-- demo"), 0o644), ShouldBeNil)
		}

		Convey("Available should list only Lua scripts", func() {
			So(Available("/scripts"), ShouldResemble, []string{"stack_demo", "vector_demo"})
		})

		Convey("A bare name should resolve inside the directory", func() {
			path, err := Resolve("vector_demo", "/scripts")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/scripts/vector_demo.lua")
		})

		Convey("A name with the extension should resolve too", func() {
			path, err := Resolve("stack_demo.lua", "/scripts")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/scripts/stack_demo.lua")
		})

		Convey("An existing path should be used as is", func() {
			path, err := Resolve("/scripts/notes.txt", "/scripts")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/scripts/notes.txt")
		})

		Convey("A partial name should suggest the closest script", func() {
			_, err := Resolve("vec", "/scripts")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "did you mean vector_demo?")
		})

		Convey("An unrelated name should list what is available", func() {
			_, err := Resolve("queue", "/scripts")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "available: stack_demo, vector_demo")
		})

		Convey("A missing path should fail without suggestions", func() {
			_, err := Resolve("/elsewhere/x.lua", "/scripts")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})
	})
}
