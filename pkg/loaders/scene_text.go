package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

var logger = log.New("loader")

// ParseError reports a malformed statement in a scene file
type ParseError struct {
	Line    int
	Keyword string
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scene line %d: %s: %s", e.Line, e.Keyword, e.Msg)
}

// argument counts per keyword
var arity = map[string]int{
	"NEAR":    1,
	"LEFT":    1,
	"RIGHT":   1,
	"BOTTOM":  1,
	"TOP":     1,
	"RES":     2,
	"SPHERE":  16,
	"LIGHT":   6,
	"BACK":    3,
	"AMBIENT": 3,
}

// ParseScene reads a line-oriented scene description:
//
//	NEAR n | LEFT l | RIGHT r | BOTTOM b | TOP t
//	RES width height
//	SPHERE x y z  sx sy sz  r g b  k_a k_d k_s n  k_reflect k_refract index
//	LIGHT x y z  r g b
//	BACK r g b
//	AMBIENT r g b
//
// Blank lines and lines starting with # are skipped. Unknown keywords are ignored.
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	s := scene.New()

	scanner := bufio.NewScanner(reader)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		if err := parseStatement(s, lineNo, tokens); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading scene: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Infof("loaded %s: %d spheres, %d lights, %dx%d",
		filename, len(s.Spheres), len(s.Lights), s.Viewport.Width, s.Viewport.Height)
	return s, nil
}

func parseStatement(s *scene.Scene, lineNo int, tokens []string) error {
	keyword := strings.ToUpper(tokens[0])
	expected, known := arity[keyword]
	if !known {
		logger.Warningf("scene line %d: ignoring unknown keyword %q", lineNo, tokens[0])
		return nil
	}

	args := tokens[1:]
	if len(args) != expected {
		return &ParseError{Line: lineNo, Keyword: keyword, Msg: fmt.Sprintf("expected %d arguments, got %d", expected, len(args))}
	}

	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return &ParseError{Line: lineNo, Keyword: keyword, Msg: fmt.Sprintf("invalid number %q", arg)}
		}
		values[i] = v
	}

	switch keyword {
	case "NEAR":
		s.Viewport.Near = values[0]
	case "LEFT":
		s.Viewport.Left = values[0]
	case "RIGHT":
		s.Viewport.Right = values[0]
	case "BOTTOM":
		s.Viewport.Bottom = values[0]
	case "TOP":
		s.Viewport.Top = values[0]
	case "RES":
		width, height := int(values[0]), int(values[1])
		if float64(width) != values[0] || float64(height) != values[1] {
			return &ParseError{Line: lineNo, Keyword: keyword, Msg: "resolution must be whole pixels"}
		}
		s.Viewport.Width, s.Viewport.Height = width, height
	case "SPHERE":
		s.AddSphere(vec3(values[0:3]), vec3(values[3:6]), geometry.Material{
			Albedo:          vec3(values[6:9]),
			Ambient:         values[9],
			Diffuse:         values[10],
			Specular:        values[11],
			Shininess:       values[12],
			Reflect:         values[13],
			Refract:         values[14],
			RefractiveIndex: values[15],
		})
	case "LIGHT":
		s.AddLight(vec3(values[0:3]), vec3(values[3:6]))
	case "BACK":
		s.BackgroundColor = core.Opaque(vec3(values))
	case "AMBIENT":
		s.Ambient = vec3(values)
	}
	return nil
}

func vec3(v []float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
