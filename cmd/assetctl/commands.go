package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/unity-forge/backend/internal/authoring"
	"github.com/unity-forge/backend/internal/config"
	"github.com/unity-forge/backend/internal/meta"
	"github.com/unity-forge/backend/internal/models"
	"github.com/unity-forge/backend/internal/parser"
	"github.com/unity-forge/backend/internal/storage"
	"github.com/urfave/cli"
)

var store = storage.NewLocalStore()

// newManager builds the authoring manager, reading --config when given.
func newManager(ctx *cli.Context) (*authoring.Manager, error) {
	setupLogging(ctx)

	cfg := config.DefaultConfig()
	if path := ctx.GlobalString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return authoring.NewManager(store, authoring.SettingsFromConfig(cfg)), nil
}

func readJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, models.ErrInvalidInput)
	}
	return tree, nil
}

func requireArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() < n {
		return fmt.Errorf("expected %s", ctx.Command.ArgsUsage)
	}
	return nil
}

func report(rec *models.AssetRecord) {
	logger.Noticef("wrote %s (guid %s)", rec.Path, rec.GUID)
}

// Create a project skeleton.
func ScaffoldProject(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	path, err := m.ScaffoldProject(context.Background(), ctx.Args().First(), ctx.String("root"), ctx.String("editor-version"))
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

// Write a default or described scene.
func CreateScene(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	scenePath := ctx.Args().First()
	var rec *models.AssetRecord
	if from := ctx.String("from"); from != "" {
		tree, err := readJSON(from)
		if err != nil {
			return err
		}
		rec, err = m.CreateDetailedScene(context.Background(), scenePath, tree)
		if err != nil {
			return err
		}
	} else {
		rec, err = m.CreateScene(context.Background(), scenePath)
		if err != nil {
			return err
		}
	}

	report(rec)
	return nil
}

// Append an object to a scene.
func AddObject(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	tree, err := readJSON(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	rec, err := m.AddObjectToScene(context.Background(), ctx.Args().First(), tree)
	if err != nil {
		return err
	}
	report(rec)
	return nil
}

// Write a prefab.
func CreatePrefab(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	tree, err := readJSON(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	rec, err := m.CreatePrefab(context.Background(), ctx.Args().First(), tree)
	if err != nil {
		return err
	}
	report(rec)
	return nil
}

// Write a material.
func CreateMaterial(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	tree, err := readJSON(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	rec, err := m.CreateMaterial(context.Background(), ctx.Args().First(), tree)
	if err != nil {
		return err
	}
	report(rec)
	return nil
}

// Write a script.
func CreateScript(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	var content string
	if from := ctx.String("from"); from != "" {
		data, err := os.ReadFile(from)
		if err != nil {
			return err
		}
		content = string(data)
	}

	rec, err := m.CreateScript(context.Background(), ctx.Args().First(), ctx.String("class"), content)
	if err != nil {
		return err
	}
	for _, problem := range rec.Syntax.Errors {
		logger.Warningf("%s: %s", rec.Path, problem)
	}
	report(&rec.AssetRecord)
	return nil
}

// Make sure assets have sidecars.
func EnsureMeta(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing asset paths")
	}

	gen := meta.NewGenerator(store)
	for _, assetPath := range ctx.Args() {
		kind := models.AssetKind(strings.ToLower(ctx.String("kind")))
		switch {
		case kind == "" && store.IsDir(assetPath):
			kind = models.AssetFolder
		case kind == "":
			kind = meta.KindForPath(assetPath)
		}

		guid, created, err := gen.Ensure(assetPath, kind)
		if err != nil {
			return err
		}
		if created {
			logger.Noticef("wrote %s (guid %s)", meta.PathFor(assetPath), guid)
		} else {
			logger.Infof("kept %s (guid %s)", meta.PathFor(assetPath), guid)
		}
	}
	return nil
}

// Sanity check scripts. Fails when any script has problems.
func CheckScripts(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing script files")
	}

	failed := 0
	for _, path := range ctx.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		result := authoring.ValidateScriptSyntax(string(data))
		if result.IsValid {
			logger.Infof("%s: ok", path)
			continue
		}
		failed++
		for _, problem := range result.Errors {
			logger.Errorf("%s: %s", path, problem)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed the check", failed, ctx.NArg())
	}
	return nil
}

// Verify Unity YAML documents. Fails when any document has problems.
func VerifyDocuments(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() == 0 {
		return errors.New("missing documents")
	}

	failed := 0
	for _, path := range ctx.Args() {
		rep, err := m.VerifyDocument(context.Background(), path)
		if err != nil {
			return err
		}
		for _, b := range rep.Blocks {
			name := parser.TypeNameForClassID(b.ClassID)
			switch {
			case name == "":
				logger.Debugf("%s:%d: !u!%d &%d %s", path, b.Line, b.ClassID, b.Handle, b.Type)
			case name != b.Type:
				logger.Warningf("%s:%d: !u!%d &%d is %s, expected %s", path, b.Line, b.ClassID, b.Handle, b.Type, name)
			default:
				logger.Debugf("%s:%d: %s &%d", path, b.Line, name, b.Handle)
			}
		}
		if rep.Valid() {
			logger.Noticef("%s: %d blocks, max handle %d", path, len(rep.Blocks), rep.MaxHandle)
			continue
		}
		failed++
		for _, h := range rep.DuplicateHandles {
			logger.Errorf("%s: duplicate handle %d", path, h)
		}
		for _, h := range rep.UnresolvedRefs {
			logger.Errorf("%s: unresolved reference %d", path, h)
		}
		for _, msg := range rep.Errors {
			logger.Errorf("%s: %s", path, msg)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed verification", failed, ctx.NArg())
	}
	return nil
}

// Merge name@version pairs into the project manifest.
func AddPackages(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	packages := make(map[string]string)
	for _, arg := range ctx.Args().Tail() {
		name, version, ok := strings.Cut(arg, "@")
		if !ok {
			return fmt.Errorf("package %q: expected name@version", arg)
		}
		packages[name] = version
	}

	deps, err := m.AddPackages(context.Background(), ctx.Args().First(), packages)
	if err != nil {
		return err
	}
	logger.Noticef("manifest now lists %d packages", len(deps))
	return nil
}

// List assets below a directory.
func ListAssets(ctx *cli.Context) error {
	m, err := newManager(ctx)
	if err != nil {
		return err
	}
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	files, err := m.ListAssets(context.Background(), ctx.Args().First(), ctx.String("pattern"))
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
