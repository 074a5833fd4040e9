package loader

import (
	"os"
	"path/filepath"
	"testing"

	"Haunt3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const quadOBJ = `# unit quad
mtllib quad.mtl
v -0.5 -0.5 0
v 0.5 -0.5 0
v 0.5 0.5 0
v -0.5 0.5 0
vt 0 0
vn 0 0 1
usemtl shroud
f 1/1/1 2/1/1 3/1/1 4/1/1
`

const quadMTL = `newmtl shroud
Kd 0.8 0.8 1.0
d 0.75
map_Kd shroud.png

newmtl bone
Kd 0.9 0.9 0.8
Tr 0.1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadMeshTriangulatesQuad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "quad.obj", quadOBJ)
	writeFile(t, dir, "quad.mtl", quadMTL)

	mesh, err := LoadMesh(path)
	if err != nil {
		t.Fatalf("Failed to load mesh: %v", err)
	}
	if len(mesh.Triangles) != 6 {
		t.Fatalf("Expected 6 vertices for 2 triangles, got %d", len(mesh.Triangles))
	}
	expected := []mgl32.Vec3{
		{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0},
		{-0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0},
	}
	for i, v := range expected {
		if mesh.Triangles[i] != v {
			t.Errorf("Expected vertex %d to be %v, got %v", i, v, mesh.Triangles[i])
		}
	}

	if len(mesh.Materials) != 2 {
		t.Fatalf("Expected 2 materials, got %d", len(mesh.Materials))
	}
	list := mesh.MaterialList()
	if list[0].MaterialName() != "bone" || list[1].MaterialName() != "shroud" {
		t.Errorf("Expected materials sorted by name, got %s, %s", list[0].MaterialName(), list[1].MaterialName())
	}
}

func TestLoadMaterials(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "quad.mtl", quadMTL)

	materials, err := LoadMaterials(path)
	if err != nil {
		t.Fatalf("Failed to load materials: %v", err)
	}

	shroud := materials["shroud"]
	if shroud == nil {
		t.Fatal("Expected shroud material")
	}
	if shroud.Alpha != 0.75 {
		t.Errorf("Expected alpha 0.75, got %f", shroud.Alpha)
	}
	if shroud.DiffuseColor != [3]float32{0.8, 0.8, 1.0} {
		t.Errorf("Expected diffuse {0.8 0.8 1}, got %v", shroud.DiffuseColor)
	}
	if shroud.TexturePath != filepath.Join(dir, "shroud.png") {
		t.Errorf("Expected texture next to the mtl file, got %s", shroud.TexturePath)
	}
	var _ renderer.ColorProperty = shroud

	bone := materials["bone"]
	if bone == nil || !mgl32.FloatEqualThreshold(bone.Alpha, 0.9, 1e-6) {
		t.Errorf("Expected bone alpha 0.9 from Tr, got %v", bone)
	}
}

func TestLoadMeshNegativeIndices(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tri.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n")

	mesh, err := LoadMesh(path)
	if err != nil {
		t.Fatalf("Failed to load mesh: %v", err)
	}
	if len(mesh.Triangles) != 3 || mesh.Triangles[2] != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected relative indices to resolve, got %v", mesh.Triangles)
	}
	if mesh.Materials != nil {
		t.Error("Expected no materials without mtllib")
	}
}

func TestLoadMeshErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad_vertex.obj": "v 0 zero 0\n",
		"short.obj":      "v 0 0\n",
		"range.obj":      "v 0 0 0\nf 1 2 3\n",
		"zero.obj":       "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"degenerate.obj": "v 0 0 0\nv 1 0 0\nf 1 2\n",
	}
	for name, content := range cases {
		path := writeFile(t, dir, name, content)
		if _, err := LoadMesh(path); err == nil {
			t.Errorf("Expected error loading %s", name)
		}
	}

	if _, err := LoadMesh(filepath.Join(dir, "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadMeshMissingMaterialLibrary(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tri.obj", "mtllib nowhere.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")

	mesh, err := LoadMesh(path)
	if err != nil {
		t.Fatalf("Expected missing mtllib to be non-fatal, got %v", err)
	}
	if len(mesh.Triangles) != 3 {
		t.Errorf("Expected 3 vertices, got %d", len(mesh.Triangles))
	}
}
