package embed_data

import (
	_ "embed"
)

// Tree-sitter queries selecting the definitional nodes kept in skeleton mode.

//go:embed queries/rust.scm
var RustQuery []byte

//go:embed queries/typescript.scm
var TypescriptQuery []byte

//go:embed queries/javascript.scm
var JavascriptQuery []byte

//go:embed queries/python.scm
var PythonQuery []byte

//go:embed queries/go.scm
var GoQuery []byte

//go:embed queries/java.scm
var JavaQuery []byte

//go:embed queries/csharp.scm
var CSharpQuery []byte
