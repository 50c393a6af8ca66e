// check_configs - 配置校验工具
// 加载并校验全部嵌入配置文件，逐个打印 ✓/✗，任何失败以非零码退出
package main

import (
	"fmt"
	"os"

	robostage "github.com/decker502/robostage"
	"github.com/decker502/robostage/pkg/config"
	"github.com/decker502/robostage/pkg/embedded"
	"github.com/decker502/robostage/pkg/game"
)

func main() {
	embedded.Init(robostage.DataFS)

	failed := 0
	check := func(path string, load func(string) error) {
		if err := load(path); err != nil {
			fmt.Printf("✗ %s: %v\n", path, err)
			failed++
			return
		}
		fmt.Printf("✓ %s\n", path)
	}

	var textureCfg *config.TextureCatalogConfig

	check(config.StageConfigPath, func(p string) error {
		_, err := config.LoadStageConfig(p)
		return err
	})
	check(config.RobotConfigPath, func(p string) error {
		_, err := config.LoadRobotConfig(p)
		return err
	})
	check(config.PoseConfigPath, func(p string) error {
		_, err := config.LoadPoseSetConfig(p)
		return err
	})
	check(config.HazardConfigPath, func(p string) error {
		_, err := config.LoadHazardsConfig(p)
		return err
	})
	check(config.TextureCatalogPath, func(p string) error {
		cfg, err := config.LoadTextureCatalogConfig(p)
		textureCfg = cfg
		return err
	})

	// 交叉检查：机器人与舞台引用的纹理ID必须都在目录中
	if textureCfg != nil {
		catalog := game.NewTextureCatalog(textureCfg)
		if err := checkTextureRefs(catalog); err != nil {
			fmt.Printf("✗ texture cross-check: %v\n", err)
			failed++
		} else {
			fmt.Println("✓ texture cross-check")
		}
	}

	if failed > 0 {
		fmt.Printf("%d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("all configs OK")
}

// checkTextureRefs 收集所有配置引用的纹理ID并逐个解析
func checkTextureRefs(catalog *game.TextureCatalog) error {
	robotCfg, err := config.LoadRobotConfig(config.RobotConfigPath)
	if err != nil {
		return err
	}
	stageCfg, err := config.LoadStageConfig(config.StageConfigPath)
	if err != nil {
		return err
	}

	refs := []string{
		robotCfg.Textures.Foot, robotCfg.Textures.Femur, robotCfg.Textures.Shoulder,
		robotCfg.Textures.Body, robotCfg.Textures.Head, robotCfg.Textures.Eye,
		stageCfg.Floor.Texture, stageCfg.Walls.Texture, stageCfg.Sky.Texture,
	}
	for _, id := range refs {
		if id == "" {
			continue
		}
		if _, err := catalog.Resolve(id); err != nil {
			return err
		}
	}
	return nil
}
