package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/nvr-ai/go-filters/cvmat"
	"gocv.io/x/gocv"
)

const (
	keyEsc         = 27
	brightnessStep = 10
)

func main() {
	var (
		deviceID   int
		grayscale  bool
		brightness int
	)
	flag.IntVar(&deviceID, "device", 0, "Video capture device ID")
	flag.BoolVar(&grayscale, "grayscale", false, "Start with the grayscale filter on")
	flag.IntVar(&brightness, "brightness", 0, "Initial brightness offset")
	flag.Parse()

	// open webcam
	webcam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		log.Fatalf("Failed to open device %d: %v", deviceID, err)
	}
	defer webcam.Close()

	// open display window
	window := gocv.NewWindow("Filter Preview")
	defer window.Close()

	// prepare image matrix
	img := gocv.NewMat()
	defer img.Close()

	green := color.RGBA{0, 255, 0, 0}

	// FPS tracking variables
	fps := 0.0
	frameCount := 0
	lastTime := time.Now()

	fmt.Printf("start reading camera device: %v (g: grayscale, +/-: brightness, esc: quit)\n", deviceID)
	for {
		if ok := webcam.Read(&img); !ok {
			log.Printf("cannot read device %v", deviceID)
			return
		}
		if img.Empty() {
			continue
		}

		// Update FPS calculation
		frameCount++
		currentTime := time.Now()
		elapsed := currentTime.Sub(lastTime).Seconds()
		if elapsed >= 1.0 {
			fps = float64(frameCount) / elapsed
			frameCount = 0
			lastTime = currentTime
		}

		if grayscale {
			if err := cvmat.ApplyGrayscale(img); err != nil {
				log.Fatalf("grayscale: %v", err)
			}
		}
		if err := cvmat.ApplyBrightness(img, brightness); err != nil {
			log.Fatalf("brightness: %v", err)
		}

		status := fmt.Sprintf("gray=%t brightness=%+d fps=%.1f", grayscale, brightness, fps)
		gocv.PutText(&img, status, image.Pt(10, 30), gocv.FontHersheyPlain, 1.5, green, 2)

		// show the image in the window, and wait 1 millisecond
		window.IMShow(img)
		switch window.WaitKey(1) {
		case 'g':
			grayscale = !grayscale
		case '+', '=':
			brightness += brightnessStep
		case '-':
			brightness -= brightnessStep
		case keyEsc:
			return
		}
	}
}
