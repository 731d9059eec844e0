package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dmw7/go-raycast-renderer/pkg/output"
	"github.com/dmw7/go-raycast-renderer/pkg/renderer"
	"github.com/dmw7/go-raycast-renderer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'row'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	thumb := flag.Uint("thumb", 0, "Also write a thumbnail of this width (0 = off)")
	upload := flag.Bool("upload", false, "Upload results to S3 (S3_* environment variables)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Raycast Renderer")
		fmt.Println("Usage: raycast [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Sphere in front of the camera above a ground sphere")
		fmt.Println("  row     - Row of spheres at increasing depth")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	var selectedScene *scene.Scene
	switch *sceneType {
	case "row":
		selectedScene = scene.NewRowScene()
	case "default":
		selectedScene = scene.NewDefaultScene()
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selectedScene = scene.NewDefaultScene()
		*sceneType = "default"
	}

	rt, err := renderer.NewRenderer(selectedScene, *width, *height)
	if err != nil {
		log.Fatalf("Error creating renderer: %v", err)
	}
	rt.SetWorkers(*workers)

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	img, stats := rt.RenderFrameParallel()

	fmt.Printf("Render completed in %v\n", stats.RenderTime)
	fmt.Printf("Pixels: %d total, %d hit, %d sky\n",
		stats.TotalPixels, stats.HitPixels, stats.MissPixels)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	if err := output.SavePNG(filename, img); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}
	fmt.Printf("Render saved as %s\n", filename)

	var thumbImg image.Image
	if *thumb > 0 {
		thumbImg = output.Thumbnail(img, *thumb)
		thumbFile := filepath.Join(outputDir, fmt.Sprintf("render_%s_thumb.png", timestamp))
		if err := output.SavePNG(thumbFile, thumbImg); err != nil {
			log.Fatalf("Error saving thumbnail: %v", err)
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbFile)
	}

	if *upload {
		if err := uploadResults(img, thumbImg, *sceneType, timestamp); err != nil {
			log.Fatalf("Upload failed: %v", err)
		}
	}
}

// uploadResults pushes the render (and thumbnail, if any) to the bucket
// configured via S3_* environment variables.
func uploadResults(img, thumbImg image.Image, sceneType, timestamp string) error {
	uploader, err := output.NewUploader(output.LoadUploadConfig())
	if err != nil {
		return err
	}

	ctx := context.Background()

	data, err := output.EncodePNG(img)
	if err != nil {
		return err
	}
	key := path.Join("renders", sceneType, fmt.Sprintf("render_%s.png", timestamp))
	if err := uploader.UploadPNG(ctx, data, key); err != nil {
		return err
	}
	log.Printf("Uploaded %s (%d bytes)", key, len(data))

	if thumbImg != nil {
		data, err = output.EncodePNG(thumbImg)
		if err != nil {
			return err
		}
		key = path.Join("renders", sceneType, fmt.Sprintf("render_%s_thumb.png", timestamp))
		if err := uploader.UploadPNG(ctx, data, key); err != nil {
			return err
		}
		log.Printf("Uploaded %s (%d bytes)", key, len(data))
	}

	return nil
}
