package main

import "github.com/Kruthika-Deepak/AI-Powered-Smart-Traffic-System/cmd"

func main() {
	cmd.Execute()
}
