// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Implements: prd001-conversion R5.3-R5.6 (container runtime strategy);
//
//	docs/ARCHITECTURE § Conversion.
package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfbridge/internal/pagerange"
)

const (
	binDocker = "docker"
	binPodman = "podman"

	// defaultImage is the containerized pdf2docx build.
	defaultImage = "pdf2docx:latest"
)

// Container runs the pdf2docx image through docker or podman. Both
// runtimes share the invocation; they differ only in binary name and
// the subcommand used to check image existence.
type Container struct {
	bin           string
	image         string
	imageCheckCmd []string // e.g. ["image", "inspect"] for docker
	exec          executor
}

func newDockerContainer(image string, exec executor) *Container {
	return &Container{
		bin:           binDocker,
		image:         image,
		imageCheckCmd: []string{"image", "inspect"},
		exec:          exec,
	}
}

func newPodmanContainer(image string, exec executor) *Container {
	return &Container{
		bin:           binPodman,
		image:         image,
		imageCheckCmd: []string{"image", "exists"},
		exec:          exec,
	}
}

// NewContainer selects a container runtime for the image: docker
// first, podman fallback. An empty image selects "pdf2docx:latest".
func NewContainer(image string) (*Container, error) {
	return newContainer(image, defaultExec)
}

func newContainer(image string, exec executor) (*Container, error) {
	if image == "" {
		image = defaultImage
	}

	docker := newDockerContainer(image, exec)
	if docker.available() {
		return docker, nil
	}

	podman := newPodmanContainer(image, exec)
	if podman.available() {
		return podman, nil
	}

	return nil, fmt.Errorf(
		"no container runtime available: neither %s nor %s found or operational",
		binDocker, binPodman,
	)
}

func (c *Container) Name() string { return fmt.Sprintf("%s (%s)", c.bin, c.image) }

// available reports whether the runtime binary exists on PATH and
// responds to an info command.
func (c *Container) available() bool {
	if _, err := c.exec.LookPath(c.bin); err != nil {
		return false
	}
	return c.exec.RunSilent(c.bin, "info") == nil
}

// Check verifies the runtime is operational and the image exists
// locally. The image is never pulled on the caller's behalf.
func (c *Container) Check() error {
	if !c.available() {
		return fmt.Errorf("container runtime %s not found or not operational", c.bin)
	}
	return c.imageExists()
}

func (c *Container) imageExists() error {
	args := make([]string, 0, len(c.imageCheckCmd)+1)
	args = append(args, c.imageCheckCmd...)
	args = append(args, c.image)

	if err := c.exec.RunSilent(c.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", c.image, c.bin, err)
	}
	return nil
}

// Convert bind-mounts the source directory read-only at /in and the
// destination directory at /out, then runs the containerized tool on
// the mounted paths.
func (c *Container) Convert(src, dst string, pages pagerange.Range) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("resolving source path %s: %w", src, err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return fmt.Errorf("resolving destination path %s: %w", dst, err)
	}

	args := []string{
		"run", "--rm",
		"-v", filepath.Dir(absSrc) + ":/in:ro",
		"-v", filepath.Dir(absDst) + ":/out",
		c.image,
		"convert",
		"/in/" + filepath.Base(absSrc),
		"/out/" + filepath.Base(absDst),
	}
	args = append(args, pageArgs(pages)...)

	out, err := c.exec.RunOutput(c.bin, args...)
	if err != nil {
		return fmt.Errorf("running %s image %s: %w: %s", c.bin, c.image, err, strings.TrimSpace(string(out)))
	}
	return nil
}
