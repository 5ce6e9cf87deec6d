package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SU2 element type codes (VTK numbering)
const (
	su2Triangle = 5
	su2Tet      = 10
)

// ReadSU2 reads an SU2 native format file containing a uniform
// simplex mesh: triangles for NDIME=2, tetrahedra for NDIME=3.
// Mixed-element and lower-dimensional elements are rejected; boundary
// marker sections are skipped.
func ReadSU2(filename string) (*SimplexMesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	var (
		ndime    int
		etype    ElementType
		vertices [][]float64
		elements [][]int
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}

		if strings.HasPrefix(line, "NDIME=") {
			fmt.Sscanf(line, "NDIME=%d", &ndime)
			switch ndime {
			case 2:
				etype = Triangle
			case 3:
				etype = Tet
			default:
				return nil, fmt.Errorf("only 2D and 3D meshes are supported, got NDIME=%d", ndime)
			}

		} else if strings.HasPrefix(line, "NELEM=") {
			if ndime == 0 {
				return nil, fmt.Errorf("NDIME must precede NELEM")
			}
			var nelem int
			fmt.Sscanf(line, "NELEM=%d", &nelem)

			elements = make([][]int, 0, nelem)

			for i := 0; i < nelem; i++ {
				scanner.Scan()
				fields := strings.Fields(scanner.Text())
				if len(fields) < 1 {
					return nil, fmt.Errorf("truncated element section at element %d", i)
				}

				su2Type, _ := strconv.Atoi(fields[0])
				var numNodes int
				switch su2Type {
				case su2Triangle:
					if etype != Triangle {
						return nil, fmt.Errorf("element %d is a triangle in a %dD mesh", i, ndime)
					}
					numNodes = 3
				case su2Tet:
					if etype != Tet {
						return nil, fmt.Errorf("element %d is a tet in a %dD mesh", i, ndime)
					}
					numNodes = 4
				default:
					return nil, fmt.Errorf("unsupported SU2 element type %d (element %d)", su2Type, i)
				}

				if len(fields) < numNodes+1 {
					return nil, fmt.Errorf("element %d has %d fields, expected %d",
						i, len(fields), numNodes+1)
				}

				verts := make([]int, numNodes)
				for j := 0; j < numNodes; j++ {
					verts[j], _ = strconv.Atoi(fields[1+j])
				}
				elements = append(elements, verts)
			}

		} else if strings.HasPrefix(line, "NPOIN=") {
			if ndime == 0 {
				return nil, fmt.Errorf("NDIME must precede NPOIN")
			}
			var npoin int
			fmt.Sscanf(line, "NPOIN=%d", &npoin)

			vertices = make([][]float64, npoin)

			for i := 0; i < npoin; i++ {
				scanner.Scan()
				fields := strings.Fields(scanner.Text())
				if len(fields) < ndime {
					return nil, fmt.Errorf("truncated point section at point %d", i)
				}

				coords := make([]float64, ndime)
				for j := 0; j < ndime; j++ {
					coords[j], _ = strconv.ParseFloat(fields[j], 64)
				}

				// Older SU2 files carry a trailing point index
				idx := i
				if len(fields) > ndime {
					if id, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
						idx = id
					}
				}
				if idx < 0 || idx >= npoin {
					return nil, fmt.Errorf("point index %d out of range [0, %d)", idx, npoin)
				}
				vertices[idx] = coords
			}

		} else if strings.HasPrefix(line, "NMARK=") {
			// Boundary markers are not used by partitioning
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if vertices == nil || elements == nil {
		return nil, fmt.Errorf("%s: missing NPOIN or NELEM section", filename)
	}

	return NewSimplexMesh(etype, vertices, elements)
}
