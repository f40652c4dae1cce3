// Command pipelineinfo reflects WGSL shader stages and prints the
// resource bindings and vertex inputs a pipeline built from them would
// expose.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/natesway/nova-renderer/rhi"
	"github.com/natesway/nova-renderer/shader"
)

func main() {
	var (
		vertexPath   = flag.String("vertex", "", "vertex shader WGSL file")
		fragmentPath = flag.String("fragment", "", "fragment shader WGSL file")
	)
	flag.Parse()

	if *vertexPath == "" && *fragmentPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	reflector := shader.NagaReflector{}

	if *vertexPath != "" {
		src, err := loadSource(*vertexPath)
		if err != nil {
			log.Fatalf("Failed to read vertex shader: %v", err)
		}
		refl, err := reflector.Reflect(src, rhi.StageVertex)
		if err != nil {
			log.Fatalf("Failed to reflect %s: %v", *vertexPath, err)
		}
		fmt.Printf("vertex stage (%s)\n", *vertexPath)
		printInputs(refl)
		printResources(refl)
	}

	if *fragmentPath != "" {
		src, err := loadSource(*fragmentPath)
		if err != nil {
			log.Fatalf("Failed to read fragment shader: %v", err)
		}
		refl, err := reflector.Reflect(src, rhi.StageFragment)
		if err != nil {
			log.Fatalf("Failed to reflect %s: %v", *fragmentPath, err)
		}
		fmt.Printf("fragment stage (%s)\n", *fragmentPath)
		printResources(refl)
	}
}

func loadSource(path string) (*shader.Source, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return shader.NewSource(path, string(text)), nil
}

func printInputs(refl shader.Reflection) {
	inputs := refl.StageInputs()
	if len(inputs) == 0 {
		return
	}
	fmt.Println("  vertex inputs:")
	for i, in := range inputs {
		fmt.Printf("    @location(%d) %s: %sx%d\n", i, in.Name, in.Base, in.VectorWidth)
	}
}

func printResources(refl shader.Reflection) {
	for _, kind := range rhi.DescriptorTypes {
		resources := refl.Resources(kind)
		if len(resources) == 0 {
			continue
		}
		fmt.Printf("  %s bindings:\n", kind)
		for _, res := range resources {
			fmt.Printf("    @group(%d) @binding(%d) %s\n", res.Set, res.Binding, res.Name)
		}
	}
}
