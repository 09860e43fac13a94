/*
 * Soldecl - Parser for the Solbind contract description language
 *
 * Copyright Solbind Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// The parse command parses a Solbind source file
// and prints the declarations it contains,
// either pretty-printed or as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/solbind/soldecl/ast"
	"github.com/solbind/soldecl/parser"
	"github.com/solbind/soldecl/pretty"
)

var jsonFlag = flag.Bool("json", false, "print the AST as JSON")
var noColorFlag = flag.Bool("no-color", false, "disable color in error output")

func main() {
	flag.Parse()

	var code []byte
	var location string
	var err error

	args := flag.Args()
	if len(args) > 0 {
		location = args[0]
		code, err = os.ReadFile(location)
	} else {
		code, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	program, err := parser.ParseProgram(code, parser.DefaultConfig)
	if err != nil {
		printErr := pretty.NewErrorPrettyPrinter(os.Stderr, !*noColorFlag).
			PrettyPrintError(err, location, code)
		if printErr != nil {
			panic(printErr)
		}
		os.Exit(1)
	}

	if *jsonFlag {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "    ")
		err = encoder.Encode(program)
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	for _, declaration := range program.Declarations {
		fmt.Println(ast.Prettier(declaration))
	}
}
