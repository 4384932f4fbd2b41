// comment-divider turns lines of source code into comment dividers.
package main

import "github.com/thirteen37/comment-divider/internal/cmd"

func main() {
	cmd.Execute()
}
