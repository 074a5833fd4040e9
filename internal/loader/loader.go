package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"Haunt3D/internal/logger"
	"Haunt3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Mesh is the collision and material data of a Wavefront OBJ file.
// Triangles holds three vertices per triangle in model space.
type Mesh struct {
	SourcePath string
	Triangles  []mgl32.Vec3
	Materials  map[string]*renderer.Material
}

// MaterialList returns the mesh materials ordered by name
func (m *Mesh) MaterialList() []renderer.Surface {
	names := make([]string, 0, len(m.Materials))
	for name := range m.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]renderer.Surface, 0, len(names))
	for _, name := range names {
		list = append(list, m.Materials[name])
	}
	return list
}

// LoadMesh reads the vertices and faces of an OBJ file. Quads and larger
// polygons are triangulated. Materials come from the first mtllib.
func LoadMesh(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mesh := &Mesh{SourcePath: filename}
	var vertices []mgl32.Vec3

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "v":
			vertex, err := parseVertex(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNo, err)
			}
			vertices = append(vertices, vertex)
		case "f":
			face, err := parseFace(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, lineNo, err)
			}
			for _, idx := range face {
				if idx < 0 {
					// Negative indices count back from the latest vertex
					idx += int32(len(vertices))
				}
				if idx < 0 || int(idx) >= len(vertices) {
					return nil, fmt.Errorf("%s:%d: vertex index out of range", filename, lineNo)
				}
				mesh.Triangles = append(mesh.Triangles, vertices[idx])
			}
		case "mtllib":
			if len(parts) < 2 || mesh.Materials != nil {
				continue
			}
			mtlPath := filepath.Join(filepath.Dir(filename), parts[1])
			materials, err := LoadMaterials(mtlPath)
			if err != nil {
				logger.Log.Warn("Failed to load material library",
					zap.String("path", mtlPath), zap.Error(err))
				continue
			}
			mesh.Materials = materials
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	logger.Log.Debug("Loaded mesh",
		zap.String("path", filename),
		zap.Int("vertices", len(vertices)),
		zap.Int("triangles", len(mesh.Triangles)/3))
	return mesh, nil
}

// LoadMaterials parses an MTL file into materials keyed by name
func LoadMaterials(filename string) (map[string]*renderer.Material, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var currentMaterial *renderer.Material
	materials := make(map[string]*renderer.Material)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] != "newmtl" && currentMaterial == nil {
			continue
		}

		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				logger.Log.Warn("Malformed material line", zap.String("line", line))
				continue
			}
			currentMaterial = renderer.NewMaterial(fields[1], renderer.DefaultMaterial.DiffuseColor)
			materials[fields[1]] = currentMaterial
		case "Kd": // Diffuse color
			if len(fields) == 4 {
				currentMaterial.DiffuseColor = parseColor(fields[1:])
			}
		case "Ks": // Specular color
			if len(fields) == 4 {
				currentMaterial.SpecularColor = parseColor(fields[1:])
			}
		case "Ns":
			if len(fields) == 2 {
				currentMaterial.Shininess = parseFloat(fields[1])
			}
		case "d": // Dissolve
			if len(fields) == 2 {
				currentMaterial.Alpha = parseFloat(fields[1])
			}
		case "Tr": // Inverted dissolve
			if len(fields) == 2 {
				currentMaterial.Alpha = 1 - parseFloat(fields[1])
			}
		case "map_Kd":
			if len(fields) >= 2 {
				// Options may precede the path
				texturePath := fields[len(fields)-1]
				if !filepath.IsAbs(texturePath) {
					texturePath = filepath.Join(filepath.Dir(filename), texturePath)
				}
				currentMaterial.TexturePath = texturePath
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return materials, nil
}

// parseColor parses RGB color components, defaulting bad fields to 0
func parseColor(fields []string) [3]float32 {
	var color [3]float32
	for i, field := range fields {
		if val, err := strconv.ParseFloat(field, 32); err == nil {
			color[i] = float32(val)
		} else {
			logger.Log.Warn("Error parsing color component", zap.Error(err))
		}
	}
	return color
}

func parseFloat(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		logger.Log.Warn("Error parsing material value", zap.Error(err))
		return 0
	}
	return float32(f)
}

// parseVertex reads x y z, ignoring an optional w
func parseVertex(parts []string) (mgl32.Vec3, error) {
	var vertex mgl32.Vec3
	if len(parts) < 3 {
		return vertex, fmt.Errorf("vertex needs 3 components, got %d", len(parts))
	}
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseFloat(parts[i], 32)
		if err != nil {
			return vertex, fmt.Errorf("invalid vertex value %v: %w", parts[i], err)
		}
		vertex[i] = float32(val)
	}
	return vertex, nil
}

// parseFace returns zero based vertex indices, three per triangle.
// Texture and normal indices are ignored.
func parseFace(parts []string) ([]int32, error) {
	if len(parts) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(parts))
	}

	face := make([]int32, 0, len(parts))
	for _, part := range parts {
		vals := strings.Split(part, "/")
		vertexIdx, err := strconv.ParseInt(vals[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %v: %w", vals[0], err)
		}
		switch {
		case vertexIdx == 0:
			return nil, fmt.Errorf("vertex index 0 in %q", part)
		case vertexIdx > 0:
			vertexIdx-- // .obj indices start at 1
		}
		face = append(face, int32(vertexIdx))
	}

	if len(face) == 3 {
		return face, nil
	}
	// Fan from the first vertex
	triangulated := make([]int32, 0, (len(face)-2)*3)
	for i := 1; i < len(face)-1; i++ {
		triangulated = append(triangulated, face[0], face[i], face[i+1])
	}
	return triangulated, nil
}
