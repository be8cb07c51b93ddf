package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const program = "go-bpmn-parser"

func main() {
	log.SetFlags(0)

	flags := flag.NewFlagSet("build", flag.ContinueOnError)
	flags.SetOutput(log.Writer())

	var tagName string
	flags.StringVar(&tagName, "tag-name", "", "name of the tag to build")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	if tagName == "" {
		log.Fatal("please provide a tag name")
	}

	if err := os.RemoveAll("./build"); err != nil {
		log.Fatalf("failed to delete build directory: %v", err)
	}
	if err := os.MkdirAll("./build", 0700); err != nil {
		log.Fatalf("failed to create build directory: %v", err)
	}

	builds := []osArch{
		{os: "darwin", arch: "arm64"},
		{os: "linux", arch: "amd64"},
		{os: "windows", arch: "amd64"},
	}

	for _, build := range builds {
		binary := build.binary()

		run(build, "go", "build", "-ldflags", "-X main.version="+tagName, "-o", binary, "./cmd/"+program)
		run(build, "tar", "cfz", filepath.Join("build", build.archive()), binary)

		if err := os.Remove(binary); err != nil {
			log.Fatalf("failed to delete binary %s: %v", binary, err)
		}

		writeChecksum(build)
	}
}

type osArch struct {
	os   string
	arch string
}

func (b osArch) archive() string {
	return fmt.Sprintf("%s-%s-%s.tar.gz", program, b.os, b.arch)
}

func (b osArch) binary() string {
	if b.os == "windows" {
		return program + ".exe"
	}
	return program
}

func run(build osArch, name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0", "GOOS="+build.os, "GOARCH="+build.arch)

	log.Printf("%s-%s: %s", build.os, build.arch, strings.Join(cmd.Args, " "))

	out, err := cmd.Output()
	if err != nil {
		log.Fatalf("failed to run command: %v", err)
	}
	if len(out) != 0 {
		log.Println(string(out))
	}
}

func writeChecksum(build osArch) {
	cmd := exec.Command("sha256sum", build.archive())
	cmd.Dir = "./build"

	out, err := cmd.Output()
	if err != nil {
		log.Fatalf("failed to calculate checksum of %s: %v", build.archive(), err)
	}

	checksumFileName := filepath.Join("build", strings.TrimSuffix(build.archive(), ".tar.gz")+".sha256")
	if err := os.WriteFile(checksumFileName, out, 0600); err != nil {
		log.Fatalf("failed to write checksum file: %v", err)
	}
}
